package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type FeedbackRepo struct {
	col *mongo.Collection
}

func NewFeedbackRepo(db *mongo.Database) *FeedbackRepo {
	return &FeedbackRepo{col: db.Collection("feedback")}
}

// Insert relies on the unique (carpool_id, given_by) index; the caller maps
// duplicate-key errors to its own sentinel.
func (r *FeedbackRepo) Insert(ctx context.Context, fb *models.Feedback) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if fb.ID.IsZero() {
		fb.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, fb); err != nil {
		return bson.NilObjectID, err
	}
	return fb.ID, nil
}

func (r *FeedbackRepo) ListFor(ctx context.Context, userID bson.ObjectID) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"given_to": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	ratings := []models.Feedback{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
