package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
)

type fakeFeedbackStore struct {
	ratings []models.Feedback
}

func (f *fakeFeedbackStore) seen(carpoolID, givenBy bson.ObjectID) bool {
	for _, fb := range f.ratings {
		if fb.CarpoolID == carpoolID && fb.GivenBy == givenBy {
			return true
		}
	}
	return false
}

func (f *fakeFeedbackStore) Insert(ctx context.Context, fb *models.Feedback) (bson.ObjectID, error) {
	if f.seen(fb.CarpoolID, fb.GivenBy) {
		return bson.ObjectID{}, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	}
	fb.ID = bson.NewObjectID()
	f.ratings = append(f.ratings, *fb)
	return fb.ID, nil
}

func (f *fakeFeedbackStore) ListFor(ctx context.Context, userID bson.ObjectID) ([]models.Feedback, error) {
	out := []models.Feedback{}
	for _, fb := range f.ratings {
		if fb.GivenTo == userID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func TestRatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		if err := ValidateRating(rating); err != ErrInvalidRating {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	for _, rating := range []int{1, 3, 5} {
		if err := ValidateRating(rating); err != nil {
			t.Errorf("rating %d: unexpected error %v", rating, err)
		}
	}
}

func TestSubmitRejectsOutOfRange(t *testing.T) {
	svc := &FeedbackService{Store: &fakeFeedbackStore{}}
	_, err := svc.Submit(context.Background(), bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID(), 6, "")
	if err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
}

func TestSubmitDuplicatePerRide(t *testing.T) {
	store := &fakeFeedbackStore{}
	svc := &FeedbackService{Store: store}

	author := bson.NewObjectID()
	driver := bson.NewObjectID()
	ride := bson.NewObjectID()

	if _, err := svc.Submit(context.Background(), author, driver, ride, 4, "smooth ride"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), author, driver, ride, 2, "changed my mind"); err != ErrDuplicateFeedback {
		t.Fatalf("expected ErrDuplicateFeedback, got %v", err)
	}
	if len(store.ratings) != 1 {
		t.Fatalf("stored %d ratings, want 1", len(store.ratings))
	}
}

func TestListForAverage(t *testing.T) {
	store := &fakeFeedbackStore{}
	svc := &FeedbackService{Store: store}

	driver := bson.NewObjectID()
	for _, rating := range []int{5, 4, 3} {
		if _, err := svc.Submit(context.Background(), bson.NewObjectID(), driver, bson.NewObjectID(), rating, ""); err != nil {
			t.Fatal(err)
		}
	}

	ratings, avg, err := svc.ListFor(context.Background(), driver)
	if err != nil {
		t.Fatal(err)
	}
	if len(ratings) != 3 {
		t.Fatalf("got %d ratings, want 3", len(ratings))
	}
	if avg != 4.0 {
		t.Fatalf("average = %v, want 4.0", avg)
	}

	_, avg, err = svc.ListFor(context.Background(), bson.NewObjectID())
	if err != nil {
		t.Fatal(err)
	}
	if avg != 0 {
		t.Fatalf("average for unrated user = %v, want 0", avg)
	}
}
