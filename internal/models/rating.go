package models

import "time"

// Rating is a 1-5 star review left by one participant of a completed swap
// for the other. Immutable after creation.
type Rating struct {
	ID            string    `json:"id" bson:"_id" example:"3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f"`
	SwapRequestID string    `json:"swap_request_id" bson:"swap_request_id" example:"9b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e"`
	RaterID       string    `json:"rater_id" bson:"rater_id" example:"5f3a9c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d"`
	RatedUserID   string    `json:"rated_user_id" bson:"rated_user_id" example:"7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d"`
	Rating        int       `json:"rating" bson:"rating" example:"5"`
	Feedback      string    `json:"feedback,omitempty" bson:"feedback,omitempty" example:"Great teacher, very patient"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" example:"2024-01-15T09:30:00Z"`
}

// CreateRatingRequest is the payload for rating a completed swap. The
// rater is identified by the rater_id query parameter. The score has no
// binding tag at all: required would reject 0 at bind time, and the 1-5
// range is checked in the service so participant checks run first.
type CreateRatingRequest struct {
	SwapRequestID string `json:"swap_request_id" binding:"required" example:"9b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e"`
	RatedUserID   string `json:"rated_user_id" binding:"required" example:"7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d"`
	Rating        int    `json:"rating" example:"5"`
	Feedback      string `json:"feedback" example:"Great teacher, very patient"`
}

// Dashboard is the composed per-user activity view.
type Dashboard struct {
	User             *User         `json:"user"`
	SentRequests     []SwapRequest `json:"sent_requests"`
	ReceivedRequests []SwapRequest `json:"received_requests"`
	RatingsGiven     int           `json:"ratings_given" example:"3"`
	RatingsReceived  int           `json:"ratings_received" example:"5"`
}

// SkillSearchResponse is the response for the skill search endpoint.
type SkillSearchResponse struct {
	Skills []string `json:"skills" example:"Guitar,Python"`
}
