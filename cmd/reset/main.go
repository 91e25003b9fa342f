// Command reset drops every collection the service owns. Development use
// only: no confirmation, no backup.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"carpool-backend/config"
	"carpool-backend/database"
	"carpool-backend/logging"
)

// dropper abstracts collection removal so the loop is testable without a
// running server.
type dropper interface {
	Drop(ctx context.Context, name string) error
}

type databaseDropper struct {
	db *mongo.Database
}

func (d databaseDropper) Drop(ctx context.Context, name string) error {
	return d.db.Collection(name).Drop(ctx)
}

// dropAll removes every named collection and reports whether all drops
// succeeded. NamespaceNotFound only warns: a fresh database has nothing to
// drop.
func dropAll(log *zap.Logger, d dropper, names []string) bool {
	ok := true
	for _, name := range names {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := d.Drop(ctx, name)
		cancel()
		if err != nil {
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceNotFound" {
				log.Warn("collection does not exist", zap.String("collection", name))
				continue
			}
			log.Error("drop failed", zap.String("collection", name), zap.Error(err))
			ok = false
			continue
		}
		log.Info("dropped", zap.String("collection", name))
	}
	return ok
}

func main() {
	cfg := config.LoadConfig()
	log := logging.New(cfg.Env)
	defer log.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Error("mongodb connection failed", zap.Error(err))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if !dropAll(log, databaseDropper{db: db}, database.Collections) {
		os.Exit(1)
	}
}
