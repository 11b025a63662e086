package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
)

const collectionRatingAttempts = "rating_attempts"

// RatingAttemptRepository implements ports.RatingAttemptRepository using MongoDB.
type RatingAttemptRepository struct {
	col *mongo.Collection
}

func NewRatingAttemptRepository(db *mongo.Database) *RatingAttemptRepository {
	return &RatingAttemptRepository{col: db.Collection(collectionRatingAttempts)}
}

var _ ports.RatingAttemptRepository = (*RatingAttemptRepository)(nil)

// Insert appends one attempt to the audit collection.
func (r *RatingAttemptRepository) Insert(ctx context.Context, attempt *domain.RatingAttempt) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, attempt); err != nil {
		return fmt.Errorf("insert rating attempt: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the attempts collection.
func (r *RatingAttemptRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "submission.idAccommodation", Value: 1}, {Key: "attempted_at", Value: -1}}},
		{Keys: bson.D{{Key: "guest", Value: 1}}},
		{Keys: bson.D{{Key: "outcome", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
