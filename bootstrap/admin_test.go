package bootstrap

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
)

type fakeAdminStore struct {
	admins    []models.User
	insertErr error
	inserts   int
}

func (f *fakeAdminStore) FindAdmin(ctx context.Context) (*models.User, error) {
	for i := range f.admins {
		if f.admins[i].IsAdmin {
			return &f.admins[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAdminStore) Insert(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	f.inserts++
	if f.insertErr != nil {
		return bson.NilObjectID, f.insertErr
	}
	user.ID = bson.NewObjectID()
	f.admins = append(f.admins, *user)
	return user.ID, nil
}

func TestSeedAdminIdempotent(t *testing.T) {
	store := &fakeAdminStore{}
	ctx := context.Background()

	if err := SeedAdmin(ctx, store, "admin@carpool.local", "changeme123"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedAdmin(ctx, store, "admin@carpool.local", "changeme123"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if store.inserts != 1 {
		t.Fatalf("expected 1 insert, got %d", store.inserts)
	}
	count := 0
	for _, u := range store.admins {
		if u.IsAdmin {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin, got %d", count)
	}
}

func TestSeedAdminSetsFlags(t *testing.T) {
	store := &fakeAdminStore{}
	if err := SeedAdmin(context.Background(), store, "admin@carpool.local", "changeme123"); err != nil {
		t.Fatal(err)
	}
	admin := store.admins[0]
	if !admin.IsAdmin || !admin.IsVerified {
		t.Fatalf("admin flags not set: %+v", admin)
	}
	if admin.PasswordHash == "changeme123" || admin.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
}

func TestSeedAdminToleratesDuplicateInsert(t *testing.T) {
	// another process won the unique-index race between find and insert
	store := &fakeAdminStore{
		insertErr: mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}},
	}
	if err := SeedAdmin(context.Background(), store, "admin@carpool.local", "changeme123"); err != nil {
		t.Fatalf("duplicate insert should be treated as seeded: %v", err)
	}
}
