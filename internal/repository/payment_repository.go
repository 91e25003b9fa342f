package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type PaymentRepo struct {
	col *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{col: db.Collection("payments")}
}

func (r *PaymentRepo) Insert(ctx context.Context, p *models.Payment) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return bson.NilObjectID, err
	}
	return p.ID, nil
}

func (r *PaymentRepo) FindForUser(ctx context.Context, id, userID bson.ObjectID) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Payment
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) ListByUser(ctx context.Context, userID bson.ObjectID) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkRefunded transitions completed → refunded. The status guard makes the
// transition single-shot: a second attempt matches nothing.
func (r *PaymentRepo) MarkRefunded(ctx context.Context, id bson.ObjectID, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.PaymentCompleted},
		bson.M{"$set": bson.M{"status": models.PaymentRefunded, "refunded_at": at}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
