package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collections lists every collection this service owns. The reset
// utility drops exactly this set.
var Collections = []string{
	"users",
	"carpools",
	"ride_requests",
	"feedback",
	"notifications",
	"chats",
	"messages",
	"payments",
	"user_preferences",
	"verifications",
}

// Connect opens the single shared client with bounded connect and
// server-selection timeouts and verifies the deployment is reachable.
func Connect(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
