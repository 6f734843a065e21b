// Package service contains business logic for the application.
package service

import (
	"context"

	"skillswap/internal/models"
)

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter models.ListUsersFilter) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	SearchSkills(ctx context.Context, query string) ([]string, error)
}

// SwapRequestServicer defines the interface for swap request operations.
type SwapRequestServicer interface {
	CreateSwapRequest(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error)
	ListSwapRequests(ctx context.Context, userID string) ([]models.SwapRequest, error)
	UpdateSwapRequestStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	DeleteSwapRequest(ctx context.Context, id string) error
}

// RatingServicer defines the interface for rating operations.
type RatingServicer interface {
	CreateRating(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error)
}

// DashboardServicer defines the interface for the dashboard aggregation.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error)
}

// Ensure concrete types implement interfaces
var (
	_ UserServicer        = (*UserService)(nil)
	_ SwapRequestServicer = (*SwapRequestService)(nil)
	_ RatingServicer      = (*RatingService)(nil)
	_ DashboardServicer   = (*DashboardService)(nil)
)
