package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// DashboardService composes the per-user activity view across the three
// collections. Pure reads; nothing is written.
type DashboardService struct {
	userRepo   repository.UserRepository
	swapRepo   repository.SwapRequestRepository
	ratingRepo repository.RatingRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repository.UserRepository, swapRepo repository.SwapRequestRepository, ratingRepo repository.RatingRepository) *DashboardService {
	return &DashboardService{
		userRepo:   userRepo,
		swapRepo:   swapRepo,
		ratingRepo: ratingRepo,
	}
}

// GetDashboard returns the user's profile, the swap requests they sent and
// received, and how many ratings they have given and received.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sent, err := s.swapRepo.FindByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	received, err := s.swapRepo.FindByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	given, err := s.ratingRepo.CountByRater(ctx, userID)
	if err != nil {
		return nil, err
	}

	got, err := s.ratingRepo.CountByRatedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		User:             user,
		SentRequests:     sent,
		ReceivedRequests: received,
		RatingsGiven:     given,
		RatingsReceived:  got,
	}, nil
}
