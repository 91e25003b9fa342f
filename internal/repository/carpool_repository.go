package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type CarpoolRepo struct {
	col *mongo.Collection
}

func NewCarpoolRepo(db *mongo.Database) *CarpoolRepo {
	return &CarpoolRepo{col: db.Collection("carpools")}
}

func (r *CarpoolRepo) Insert(ctx context.Context, cp *models.Carpool) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if cp.ID.IsZero() {
		cp.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, cp); err != nil {
		return bson.NilObjectID, err
	}
	return cp.ID, nil
}

func (r *CarpoolRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Carpool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cp models.Carpool
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// ListAvailable returns active future rides with seats left. from/to are
// optional exact-match location filters; a non-zero day narrows departures
// to that calendar day.
func (r *CarpoolRepo) ListAvailable(ctx context.Context, from, to string, day time.Time) ([]models.Carpool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	departure := bson.M{"$gte": time.Now().UTC()}
	if !day.IsZero() {
		start := day.Truncate(24 * time.Hour)
		if now := time.Now().UTC(); now.After(start) {
			start = now
		}
		departure = bson.M{"$gte": start, "$lt": day.Truncate(24 * time.Hour).Add(24 * time.Hour)}
	}
	filter := bson.M{
		"status":          models.CarpoolActive,
		"available_seats": bson.M{"$gt": 0},
		"departure_time":  departure,
	}
	if from != "" {
		filter["start_location"] = from
	}
	if to != "" {
		filter["end_location"] = to
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "departure_time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	carpools := []models.Carpool{}
	if err := cursor.All(ctx, &carpools); err != nil {
		return nil, err
	}
	return carpools, nil
}

// ListForUser returns rides the user drives plus rides in the given id set
// (the ones they joined).
func (r *CarpoolRepo) ListForUser(ctx context.Context, userID bson.ObjectID, joined []bson.ObjectID) ([]models.Carpool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"driver_id": userID},
		bson.M{"_id": bson.M{"$in": joined}},
	}}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "departure_time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	carpools := []models.Carpool{}
	if err := cursor.All(ctx, &carpools); err != nil {
		return nil, err
	}
	return carpools, nil
}

// ClaimSeat atomically decrements available_seats, guarded so the count
// can never go below zero. Returns false when the ride is already full.
func (r *CarpoolRepo) ClaimSeat(ctx context.Context, id bson.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.CarpoolActive, "available_seats": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"available_seats": -1}, "$set": bson.M{"updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *CarpoolRepo) ReleaseSeat(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"available_seats": 1}, "$set": bson.M{"updated_at": time.Now().UTC()}},
	)
	return err
}

func (r *CarpoolRepo) SetStatus(ctx context.Context, id bson.ObjectID, status models.CarpoolStatus) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	return err
}
