// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Swap request errors
var (
	ErrSwapRequestNotFound = errors.New("swap request not found")
	ErrSelfSwap            = errors.New("cannot send request to yourself")
)

// Rating errors
var (
	ErrSwapNotCompleted = errors.New("can only rate completed swaps")
	ErrNotParticipant   = errors.New("can only rate swaps you participated in")
	ErrAlreadyRated     = errors.New("already rated this swap")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
