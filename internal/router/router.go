// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "skillswap/swagger" // Import generated swagger docs

	"skillswap/internal/handler"
	"skillswap/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	UserHandler        *handler.UserHandler
	SwapRequestHandler *handler.SwapRequestHandler
	RatingHandler      *handler.RatingHandler
	SearchHandler      *handler.SearchHandler
	DashboardHandler   *handler.DashboardHandler
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// All endpoints live under the fixed /api prefix. No auth anywhere:
	// acting users are passed as query parameters.
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", cfg.UserHandler.CreateUser)
			users.GET("", cfg.UserHandler.ListUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
		}

		swaps := api.Group("/swap-requests")
		{
			swaps.POST("", cfg.SwapRequestHandler.CreateSwapRequest)
			swaps.GET("", cfg.SwapRequestHandler.ListSwapRequests)
			swaps.PUT("/:id", cfg.SwapRequestHandler.UpdateSwapRequest)
			swaps.DELETE("/:id", cfg.SwapRequestHandler.DeleteSwapRequest)
		}

		api.POST("/ratings", cfg.RatingHandler.CreateRating)
		api.GET("/search/skills", cfg.SearchHandler.SearchSkills)
		api.GET("/dashboard/:id", cfg.DashboardHandler.GetDashboard)
	}

	return r
}
