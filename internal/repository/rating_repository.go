package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Insert(ctx context.Context, rating *models.Rating) error
	FindBySwapAndRater(ctx context.Context, swapRequestID, raterID string) (*models.Rating, error)
	FindByRatedUser(ctx context.Context, userID string) ([]models.Rating, error)
	CountByRater(ctx context.Context, userID string) (int, error)
	CountByRatedUser(ctx context.Context, userID string) (int, error)
}

// ratingRepository implements RatingRepository using MongoDB.
type ratingRepository struct {
	collection *mongo.Collection
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *mongo.Database) RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
	}
}

// Insert stores a new rating, assigning its id and timestamp. Ratings are
// immutable; there is no update path.
func (r *ratingRepository) Insert(ctx context.Context, rating *models.Rating) error {
	rating.ID = uuid.NewString()
	rating.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, rating)
	return err
}

// FindBySwapAndRater returns the rating a user left on a swap, or nil if
// they have not rated it.
func (r *ratingRepository) FindBySwapAndRater(ctx context.Context, swapRequestID, raterID string) (*models.Rating, error) {
	filter := bson.M{
		"swap_request_id": swapRequestID,
		"rater_id":        raterID,
	}

	var rating models.Rating
	err := r.collection.FindOne(ctx, filter).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &rating, nil
}

// FindByRatedUser returns the ratings a user has received, used to
// recompute their denormalized average.
func (r *ratingRepository) FindByRatedUser(ctx context.Context, userID string) ([]models.Rating, error) {
	opts := options.Find().SetLimit(maxListResults)

	cursor, err := r.collection.Find(ctx, bson.M{"rated_user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	if ratings == nil {
		ratings = []models.Rating{}
	}

	return ratings, nil
}

// CountByRater counts the ratings a user has given.
func (r *ratingRepository) CountByRater(ctx context.Context, userID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"rater_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountByRatedUser counts the ratings a user has received.
func (r *ratingRepository) CountByRatedUser(ctx context.Context, userID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"rated_user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
