package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
	"carpool-backend/observability"
)

type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) (bson.ObjectID, error)
	FindForUser(ctx context.Context, id, userID bson.ObjectID) (*models.Payment, error)
	ListByUser(ctx context.Context, userID bson.ObjectID) ([]models.Payment, error)
	MarkRefunded(ctx context.Context, id bson.ObjectID, at time.Time) (bool, error)
}

// PaymentGateway abstracts the card processor so the business rules are
// testable without network calls.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int64, currency string) (string, error)
	Refund(ctx context.Context, providerID string) error
}

type PaymentService struct {
	Store   PaymentStore
	Gateway PaymentGateway
	Notify  Notifier
}

func (s *PaymentService) Create(ctx context.Context, userID, carpoolID bson.ObjectID, requestID *bson.ObjectID, amount int64, currency string) (*models.Payment, error) {
	if currency == "" {
		currency = "usd"
	}
	providerID, err := s.Gateway.Charge(ctx, amount, currency)
	if err != nil {
		return nil, err
	}

	p := &models.Payment{
		UserID:        userID,
		CarpoolID:     carpoolID,
		RideRequestID: requestID,
		Amount:        amount,
		Currency:      currency,
		Status:        models.PaymentCompleted,
		Reference:     uuid.NewString(),
		ProviderID:    providerID,
		CreatedAt:     time.Now().UTC(),
	}
	id, err := s.Store.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, userID bson.ObjectID) ([]models.Payment, error) {
	return s.Store.ListByUser(ctx, userID)
}

// Refund is idempotent: the first call moves completed → refunded and hits
// the gateway once; any later call sees the refunded record and returns it
// untouched.
func (s *PaymentService) Refund(ctx context.Context, paymentID, userID bson.ObjectID) (*models.Payment, error) {
	p, err := s.Store.FindForUser(ctx, paymentID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Status == models.PaymentRefunded {
		return p, nil
	}
	if p.Status != models.PaymentCompleted {
		return nil, ErrInvalidState
	}

	if err := s.Gateway.Refund(ctx, p.ProviderID); err != nil {
		return nil, err
	}

	at := time.Now().UTC()
	moved, err := s.Store.MarkRefunded(ctx, paymentID, at)
	if err != nil {
		return nil, err
	}
	if moved {
		observability.PaymentsRefunded.Inc()
		if s.Notify != nil {
			_ = s.Notify.Push(ctx, userID, models.NotifyPayment, "Your payment was refunded",
				models.Ref{Entity: "payment", ID: paymentID})
		}
		p.Status = models.PaymentRefunded
		p.RefundedAt = &at
		return p, nil
	}

	// lost a race with another refund of the same record
	return s.Store.FindForUser(ctx, paymentID, userID)
}
