package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type VerificationRepo struct {
	col *mongo.Collection
}

func NewVerificationRepo(db *mongo.Database) *VerificationRepo {
	return &VerificationRepo{col: db.Collection("verifications")}
}

func (r *VerificationRepo) Insert(ctx context.Context, v *models.Verification) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, v); err != nil {
		return bson.NilObjectID, err
	}
	return v.ID, nil
}

func (r *VerificationRepo) ListPending(ctx context.Context) ([]models.Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"status": models.VerificationPending}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	pending := []models.Verification{}
	if err := cursor.All(ctx, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Review resolves a pending verification. The status guard means a request
// can only be reviewed once.
func (r *VerificationRepo) Review(ctx context.Context, id bson.ObjectID, status models.VerificationStatus, reviewer bson.ObjectID) (*models.Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v models.Verification
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "status": models.VerificationPending},
		bson.M{"$set": bson.M{"status": status, "reviewed_by": reviewer, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
