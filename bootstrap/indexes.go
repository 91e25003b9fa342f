package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const notificationTTLSeconds = 30 * 24 * 60 * 60

// EnsureIndexes creates every index the service relies on. CreateMany is
// idempotent, so this is safe to run on every startup.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			// at most one administrator document, ever
			Keys: bson.D{{Key: "is_admin", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_admin", Value: true}}).
				SetName("uniq_admin"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("carpools").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "driver_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "departure_time", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("ride_requests").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "carpool_id", Value: 1}}},
		{Keys: bson.D{{Key: "rider_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("feedback").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "carpool_id", Value: 1}, {Key: "given_by", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_carpool_author"),
		},
		{Keys: bson.D{{Key: "given_to", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("notifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(notificationTTLSeconds).SetName("ttl_created_at"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("chats").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "participant_ids", Value: 1}, {Key: "updated_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "chat_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("payments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("user_preferences").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user"),
		},
		{Keys: bson.D{{Key: "commute.departure_location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "commute.destination", Value: "2dsphere"}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("verifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
