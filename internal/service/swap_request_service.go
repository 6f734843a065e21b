package service

import (
	"context"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// SwapRequestService handles business logic for swap requests.
type SwapRequestService struct {
	swapRepo repository.SwapRequestRepository
	userRepo repository.UserRepository
}

// NewSwapRequestService creates a new SwapRequestService.
func NewSwapRequestService(swapRepo repository.SwapRequestRepository, userRepo repository.UserRepository) *SwapRequestService {
	return &SwapRequestService{
		swapRepo: swapRepo,
		userRepo: userRepo,
	}
}

// CreateSwapRequest creates a pending swap request from requesterID to the
// receiver named in the payload. Both users must exist and be distinct.
// The skills are free text and are not checked against either skill list.
func (s *SwapRequestService) CreateSwapRequest(ctx context.Context, requesterID string, req *models.CreateSwapRequestRequest) (*models.SwapRequest, error) {
	if _, err := s.userRepo.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	if requesterID == req.ReceiverID {
		return nil, apperrors.ErrSelfSwap
	}

	swap := &models.SwapRequest{
		RequesterID:    requesterID,
		ReceiverID:     req.ReceiverID,
		RequesterSkill: req.RequesterSkill,
		ReceiverSkill:  req.ReceiverSkill,
		Message:        req.Message,
		Status:         models.SwapStatusPending,
	}

	if err := s.swapRepo.Insert(ctx, swap); err != nil {
		return nil, err
	}

	return swap, nil
}

// ListSwapRequests returns swap requests newest first. With a userID it
// returns those where the user is requester or receiver; otherwise all.
func (s *SwapRequestService) ListSwapRequests(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return s.swapRepo.Find(ctx, userID)
}

// UpdateSwapRequestStatus sets a new status on the request. Any status may
// replace any other.
func (s *SwapRequestService) UpdateSwapRequestStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	return s.swapRepo.UpdateStatus(ctx, id, status)
}

// DeleteSwapRequest removes a swap request unconditionally.
func (s *SwapRequestService) DeleteSwapRequest(ctx context.Context, id string) error {
	return s.swapRepo.Delete(ctx, id)
}
