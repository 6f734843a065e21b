// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxListResults caps every list query. The API has no pagination; callers
// get at most this many documents per list.
const maxListResults = 1000

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context, publicOnly bool, location string) ([]models.User, error)
	Update(ctx context.Context, id string, update *models.UpdateUserRequest) (*models.User, error)
	SetRatingStats(ctx context.Context, id string, rating float64, totalRatings int) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user. Fails with ErrEmailTaken if another user
// already registered the same email.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrEmailTaken
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	_, err = r.collection.InsertOne(ctx, user)
	return err
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Find returns users matching the storage-level filters: is_public when
// publicOnly is set, and a case-insensitive substring match on location.
// Skill matching happens in the service layer.
func (r *userRepository) Find(ctx context.Context, publicOnly bool, location string) ([]models.User, error) {
	filter := bson.M{}
	if publicOnly {
		filter["is_public"] = true
	}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}

	opts := options.Find().SetLimit(maxListResults)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Update applies a partial update, writing only the fields that were
// provided, and returns the document after the merge.
func (r *userRepository) Update(ctx context.Context, id string, update *models.UpdateUserRequest) (*models.User, error) {
	setDoc := bson.M{}

	if update.Name != nil {
		setDoc["name"] = *update.Name
	}
	if update.Location != nil {
		setDoc["location"] = *update.Location
	}
	if update.ProfilePhoto != nil {
		setDoc["profile_photo"] = *update.ProfilePhoto
	}
	if update.SkillsOffered != nil {
		setDoc["skills_offered"] = *update.SkillsOffered
	}
	if update.SkillsWanted != nil {
		setDoc["skills_wanted"] = *update.SkillsWanted
	}
	if update.Availability != nil {
		setDoc["availability"] = *update.Availability
	}
	if update.IsPublic != nil {
		setDoc["is_public"] = *update.IsPublic
	}

	// Nothing to change; still report whether the user exists.
	if len(setDoc) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": setDoc}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// SetRatingStats writes the denormalized rating average and count onto the
// user document.
func (r *userRepository) SetRatingStats(ctx context.Context, id string, rating float64, totalRatings int) error {
	update := bson.M{"$set": bson.M{"rating": rating, "total_ratings": totalRatings}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
