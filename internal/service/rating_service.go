package service

import (
	"context"
	"errors"
	"math"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// RatingService handles business logic for ratings, including the
// denormalized per-user rating aggregate.
type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRequestRepository
	userRepo   repository.UserRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRequestRepository, userRepo repository.UserRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
		userRepo:   userRepo,
	}
}

// CreateRating records a rating for a completed swap and recomputes the
// rated user's aggregate. Checks run in a fixed order: the swap must exist
// and be completed, the rater must be a participant, the rater must not
// have rated this swap before, and the score must be within 1-5. The score
// range is last on purpose, after the participant check.
func (s *RatingService) CreateRating(ctx context.Context, raterID string, req *models.CreateRatingRequest) (*models.Rating, error) {
	swap, err := s.swapRepo.FindByID(ctx, req.SwapRequestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSwapRequestNotFound) {
			return nil, apperrors.ErrSwapNotCompleted
		}
		return nil, err
	}
	if swap.Status != models.SwapStatusCompleted {
		return nil, apperrors.ErrSwapNotCompleted
	}

	if raterID != swap.RequesterID && raterID != swap.ReceiverID {
		return nil, apperrors.ErrNotParticipant
	}

	existing, err := s.ratingRepo.FindBySwapAndRater(ctx, req.SwapRequestID, raterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyRated
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}

	rating := &models.Rating{
		SwapRequestID: req.SwapRequestID,
		RaterID:       raterID,
		RatedUserID:   req.RatedUserID,
		Rating:        req.Rating,
		Feedback:      req.Feedback,
	}

	if err := s.ratingRepo.Insert(ctx, rating); err != nil {
		return nil, err
	}

	// Two independent writes with no isolation: if this fails the rating
	// stays persisted with a stale aggregate.
	if err := s.recomputeUserRating(ctx, req.RatedUserID); err != nil {
		return nil, err
	}

	return rating, nil
}

// recomputeUserRating reads every rating the user has received, averages
// the scores rounded to one decimal, and writes the aggregate back onto
// the user document. No-op when the user has no ratings.
func (s *RatingService) recomputeUserRating(ctx context.Context, userID string) error {
	ratings, err := s.ratingRepo.FindByRatedUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return nil
	}

	total := 0
	for _, r := range ratings {
		total += r.Rating
	}

	average := float64(total) / float64(len(ratings))
	rounded := math.Round(average*10) / 10

	return s.userRepo.SetRatingStats(ctx, userID, rounded, len(ratings))
}
