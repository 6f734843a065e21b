package models

import "time"

// SwapStatus represents the state of a swap request.
type SwapStatus string

const (
	// SwapStatusPending is the initial state of every swap request.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted means the receiver agreed to the swap.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected means the receiver declined the swap.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCompleted means both sides finished the exchange. Only
	// completed swaps can be rated.
	SwapStatusCompleted SwapStatus = "completed"
	// SwapStatusCancelled means the requester withdrew the swap.
	SwapStatusCancelled SwapStatus = "cancelled"
)

// SwapRequest represents a proposal to exchange one skill for another
// between two users.
type SwapRequest struct {
	ID             string     `json:"id" bson:"_id" example:"9b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e"`
	RequesterID    string     `json:"requester_id" bson:"requester_id" example:"5f3a9c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d"`
	ReceiverID     string     `json:"receiver_id" bson:"receiver_id" example:"7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d"`
	RequesterSkill string     `json:"requester_skill" bson:"requester_skill" example:"Python"`
	ReceiverSkill  string     `json:"receiver_skill" bson:"receiver_skill" example:"Spanish"`
	Message        string     `json:"message,omitempty" bson:"message,omitempty" example:"Happy to meet on weekends"`
	Status         SwapStatus `json:"status" bson:"status" example:"pending"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at" example:"2024-01-15T10:00:00Z"`
}

// CreateSwapRequestRequest is the payload for creating a swap request.
// The requester is identified by the requester_id query parameter.
type CreateSwapRequestRequest struct {
	ReceiverID     string `json:"receiver_id" binding:"required" example:"7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d"`
	RequesterSkill string `json:"requester_skill" binding:"required" example:"Python"`
	ReceiverSkill  string `json:"receiver_skill" binding:"required" example:"Spanish"`
	Message        string `json:"message" example:"Happy to meet on weekends"`
}

// UpdateSwapRequestRequest is the payload for changing a swap request's
// status. Any status may replace any other; there is no transition graph.
type UpdateSwapRequestRequest struct {
	Status SwapStatus `json:"status" binding:"required,swapstatus" example:"accepted"`
}
