// Package models defines data structures for the application.
package models

import "time"

// UserStatus represents the account state of a user.
type UserStatus string

const (
	// UserStatusActive is the default account state.
	UserStatusActive UserStatus = "active"
	// UserStatusBanned marks an account as banned. Stored but not enforced
	// by any endpoint.
	UserStatusBanned UserStatus = "banned"
)

// User represents a marketplace profile.
type User struct {
	ID            string     `json:"id" bson:"_id" example:"5f3a9c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d"`
	Name          string     `json:"name" bson:"name" example:"Alice Johnson"`
	Email         string     `json:"email" bson:"email" example:"alice@example.com"`
	Location      string     `json:"location,omitempty" bson:"location,omitempty" example:"New York, NY"`
	ProfilePhoto  string     `json:"profile_photo,omitempty" bson:"profile_photo,omitempty" example:"https://example.com/alice.jpg"`
	SkillsOffered []string   `json:"skills_offered" bson:"skills_offered" example:"Python,Guitar"`
	SkillsWanted  []string   `json:"skills_wanted" bson:"skills_wanted" example:"Spanish"`
	Availability  string     `json:"availability,omitempty" bson:"availability,omitempty" example:"weekends"`
	IsPublic      bool       `json:"is_public" bson:"is_public" example:"true"`
	Status        UserStatus `json:"status" bson:"status" example:"active"`
	Rating        float64    `json:"rating" bson:"rating" example:"4.5"`
	TotalRatings  int        `json:"total_ratings" bson:"total_ratings" example:"12"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for registering a profile.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required" example:"Alice Johnson"`
	Email        string `json:"email" binding:"required,email" example:"alice@example.com"`
	Location     string `json:"location" example:"New York, NY"`
	ProfilePhoto string `json:"profile_photo" example:"https://example.com/alice.jpg"`
}

// UpdateUserRequest is the payload for a partial profile update. Pointer
// fields distinguish "not provided" from an explicit zero value; only
// provided fields are written.
type UpdateUserRequest struct {
	Name          *string   `json:"name" example:"Alice J."`
	Location      *string   `json:"location" example:"Boston, MA"`
	ProfilePhoto  *string   `json:"profile_photo" example:"https://example.com/new.jpg"`
	SkillsOffered *[]string `json:"skills_offered" example:"Python,Guitar"`
	SkillsWanted  *[]string `json:"skills_wanted" example:"Spanish"`
	Availability  *string   `json:"availability" example:"evenings"`
	IsPublic      *bool     `json:"is_public" example:"false"`
}

// ListUsersFilter holds the optional query filters for listing users.
type ListUsersFilter struct {
	Skill      string
	Location   string
	PublicOnly bool
}
