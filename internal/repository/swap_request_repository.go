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

// SwapRequestRepository defines the interface for swap request data operations.
type SwapRequestRepository interface {
	Insert(ctx context.Context, req *models.SwapRequest) error
	FindByID(ctx context.Context, id string) (*models.SwapRequest, error)
	Find(ctx context.Context, userID string) ([]models.SwapRequest, error)
	FindByRequester(ctx context.Context, userID string) ([]models.SwapRequest, error)
	FindByReceiver(ctx context.Context, userID string) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)
	Delete(ctx context.Context, id string) error
}

// swapRequestRepository implements SwapRequestRepository using MongoDB.
type swapRequestRepository struct {
	collection *mongo.Collection
}

// NewSwapRequestRepository creates a new SwapRequestRepository.
func NewSwapRequestRepository(db *mongo.Database) SwapRequestRepository {
	return &swapRequestRepository{
		collection: db.Collection("swap_requests"),
	}
}

// Insert stores a new swap request, assigning its id and timestamps.
func (r *swapRequestRepository) Insert(ctx context.Context, req *models.SwapRequest) error {
	req.ID = uuid.NewString()
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, req)
	return err
}

// FindByID finds a swap request by its ID.
func (r *swapRequestRepository) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	var req models.SwapRequest

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSwapRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// Find returns swap requests, newest first. When userID is set, only
// requests where the user is requester or receiver are returned.
func (r *swapRequestRepository) Find(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	filter := bson.M{}
	if userID != "" {
		filter = bson.M{"$or": []bson.M{
			{"requester_id": userID},
			{"receiver_id": userID},
		}}
	}

	return r.find(ctx, filter)
}

// FindByRequester returns swap requests sent by the user, newest first.
func (r *swapRequestRepository) FindByRequester(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return r.find(ctx, bson.M{"requester_id": userID})
}

// FindByReceiver returns swap requests received by the user, newest first.
func (r *swapRequestRepository) FindByReceiver(ctx context.Context, userID string) ([]models.SwapRequest, error) {
	return r.find(ctx, bson.M{"receiver_id": userID})
}

func (r *swapRequestRepository) find(ctx context.Context, filter bson.M) ([]models.SwapRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(maxListResults)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.SwapRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if requests == nil {
		requests = []models.SwapRequest{}
	}

	return requests, nil
}

// UpdateStatus sets the status and refreshes updated_at, returning the
// document after the change. No transition rules apply.
func (r *swapRequestRepository) UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.SwapRequest
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSwapRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// Delete removes a swap request. Ratings referencing it are left in place.
func (r *swapRequestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrSwapRequestNotFound
	}

	return nil
}
