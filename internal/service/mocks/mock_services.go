// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"skillswap/internal/models"
)

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc   func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	ListUsersFunc    func(ctx context.Context, filter models.ListUsersFilter) ([]models.User, error)
	GetUserFunc      func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc   func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	SearchSkillsFunc func(ctx context.Context, query string) ([]string, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context, filter models.ListUsersFilter) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) SearchSkills(ctx context.Context, query string) ([]string, error) {
	if m.SearchSkillsFunc != nil {
		return m.SearchSkillsFunc(ctx, query)
	}
	return nil, nil
}

// MockSwapRequestService is a mock implementation of SwapRequestServicer.
type MockSwapRequestService struct {
	CreateSwapRequestFunc       func(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error)
	ListSwapRequestsFunc        func(ctx context.Context, userID string) ([]models.SwapRequest, error)
	UpdateSwapRequestStatusFunc func(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	DeleteSwapRequestFunc       func(ctx context.Context, id string) error
}

func (m *MockSwapRequestService) CreateSwapRequest(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
	if m.CreateSwapRequestFunc != nil {
		return m.CreateSwapRequestFunc(ctx, requesterID, req)
	}
	return nil, nil
}

func (m *MockSwapRequestService) ListSwapRequests(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	if m.ListSwapRequestsFunc != nil {
		return m.ListSwapRequestsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSwapRequestService) UpdateSwapRequestStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	if m.UpdateSwapRequestStatusFunc != nil {
		return m.UpdateSwapRequestStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockSwapRequestService) DeleteSwapRequest(ctx context.Context, id string) error {
	if m.DeleteSwapRequestFunc != nil {
		return m.DeleteSwapRequestFunc(ctx, id)
	}
	return nil
}

// MockRatingService is a mock implementation of RatingServicer.
type MockRatingService struct {
	CreateRatingFunc func(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error)
}

func (m *MockRatingService) CreateRating(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error) {
	if m.CreateRatingFunc != nil {
		return m.CreateRatingFunc(ctx, raterID, req)
	}
	return nil, nil
}

// MockDashboardService is a mock implementation of DashboardServicer.
type MockDashboardService struct {
	GetDashboardFunc func(ctx context.Context, userID string) (*models.Dashboard, error)
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(ctx, userID)
	}
	return nil, nil
}
