package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type RequestRepo struct {
	col *mongo.Collection
}

func NewRequestRepo(db *mongo.Database) *RequestRepo {
	return &RequestRepo{col: db.Collection("ride_requests")}
}

func (r *RequestRepo) Insert(ctx context.Context, req *models.RideRequest) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if req.ID.IsZero() {
		req.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, req); err != nil {
		return bson.NilObjectID, err
	}
	return req.ID, nil
}

func (r *RequestRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.RideRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var req models.RideRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// FindActive returns the rider's pending or accepted request for a carpool,
// if any.
func (r *RequestRepo) FindActive(ctx context.Context, carpoolID, riderID bson.ObjectID) (*models.RideRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"carpool_id": carpoolID,
		"rider_id":   riderID,
		"status":     bson.M{"$in": bson.A{models.RequestPending, models.RequestAccepted}},
	}
	var req models.RideRequest
	if err := r.col.FindOne(ctx, filter).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) ListByRider(ctx context.Context, riderID bson.ObjectID) ([]models.RideRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"rider_id": riderID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	requests := []models.RideRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepo) ListAccepted(ctx context.Context, carpoolID bson.ObjectID) ([]models.RideRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"carpool_id": carpoolID, "status": models.RequestAccepted})
	if err != nil {
		return nil, err
	}
	requests := []models.RideRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepo) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.RequestStatus) (*models.RideRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var req models.RideRequest
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
