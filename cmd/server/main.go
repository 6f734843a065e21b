package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/handler"
	"skillswap/internal/repository"
	"skillswap/internal/router"
	"skillswap/internal/service"
	"skillswap/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           SkillSwap API
// @version         1.0
// @description     A skill-exchange marketplace backend built with Gin and MongoDB.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURL, cfg.Database)
	defer mongoDB.Close()

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	swapRepo := repository.NewSwapRequestRepository(mongoDB.Database)
	ratingRepo := repository.NewRatingRepository(mongoDB.Database)

	// Service layer
	userService := service.NewUserService(userRepo)
	swapService := service.NewSwapRequestService(swapRepo, userRepo)
	ratingService := service.NewRatingService(ratingRepo, swapRepo, userRepo)
	dashboardService := service.NewDashboardService(userRepo, swapRepo, ratingRepo)

	// Handler layer
	userHandler := handler.NewUserHandler(userService)
	swapHandler := handler.NewSwapRequestHandler(swapService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	searchHandler := handler.NewSearchHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Router
	r := router.Setup(&router.Config{
		UserHandler:        userHandler,
		SwapRequestHandler: swapHandler,
		RatingHandler:      ratingHandler,
		SearchHandler:      searchHandler,
		DashboardHandler:   dashboardHandler,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Drain connections before the deferred Mongo disconnect runs
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
