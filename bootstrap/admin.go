package bootstrap

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"carpool-backend/internal/models"
)

// AdminStore is the slice of the user repository the seeder needs.
type AdminStore interface {
	FindAdmin(ctx context.Context) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (bson.ObjectID, error)
}

// SeedAdmin makes sure exactly one administrator exists. The partial unique
// index on is_admin:true closes the check-then-insert race: a concurrent
// startup that loses the insert sees a duplicate-key error and treats it as
// already seeded. Running this twice never yields two admins.
func SeedAdmin(ctx context.Context, store AdminStore, email, password string) error {
	_, err := store.FindAdmin(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = store.Insert(ctx, &models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}
