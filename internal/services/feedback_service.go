package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
)

type FeedbackStore interface {
	Insert(ctx context.Context, fb *models.Feedback) (bson.ObjectID, error)
	ListFor(ctx context.Context, userID bson.ObjectID) ([]models.Feedback, error)
}

// ValidateRating enforces the 1..5 bound; 0 and 6 are rejected.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

type FeedbackService struct {
	Store FeedbackStore
}

func (s *FeedbackService) Submit(ctx context.Context, givenBy, givenTo, carpoolID bson.ObjectID, rating int, comments string) (*models.Feedback, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	fb := &models.Feedback{
		CarpoolID: carpoolID,
		GivenBy:   givenBy,
		GivenTo:   givenTo,
		Rating:    rating,
		Comments:  comments,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.Store.Insert(ctx, fb)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateFeedback
		}
		return nil, err
	}
	fb.ID = id
	return fb, nil
}

// ListFor returns the ratings a user has received plus their average.
func (s *FeedbackService) ListFor(ctx context.Context, userID bson.ObjectID) ([]models.Feedback, float64, error) {
	ratings, err := s.Store.ListFor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(ratings) == 0 {
		return ratings, 0, nil
	}
	sum := 0
	for _, fb := range ratings {
		sum += fb.Rating
	}
	return ratings, float64(sum) / float64(len(ratings)), nil
}
