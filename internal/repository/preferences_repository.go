package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type PreferencesRepo struct {
	col *mongo.Collection
}

func NewPreferencesRepo(db *mongo.Database) *PreferencesRepo {
	return &PreferencesRepo{col: db.Collection("user_preferences")}
}

func (r *PreferencesRepo) FindByUser(ctx context.Context, userID bson.ObjectID) (*models.UserPreferences, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var prefs models.UserPreferences
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert replaces the user's preferences document, creating it on first
// write. The unique user_id index keeps this one-to-one.
func (r *PreferencesRepo) Upsert(ctx context.Context, prefs *models.UserPreferences) (*models.UserPreferences, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	prefs.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"commute":          prefs.Commute,
		"preferred_times":  prefs.PreferredTimes,
		"max_price":        prefs.MaxPrice,
		"preferred_gender": prefs.PreferredGender,
		"updated_at":       prefs.UpdatedAt,
	}}

	var updated models.UserPreferences
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": prefs.UserID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
