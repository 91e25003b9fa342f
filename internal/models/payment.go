package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

// Amount is stored in minor units (cents) to match the gateway.
type Payment struct {
	ID            bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        bson.ObjectID  `bson:"user_id" json:"user_id"`
	CarpoolID     bson.ObjectID  `bson:"carpool_id" json:"carpool_id"`
	RideRequestID *bson.ObjectID `bson:"ride_request_id,omitempty" json:"ride_request_id,omitempty"`
	Amount        int64          `bson:"amount" json:"amount"`
	Currency      string         `bson:"currency" json:"currency"`
	Status        PaymentStatus  `bson:"status" json:"status"`
	Reference     string         `bson:"reference" json:"reference"`
	ProviderID    string         `bson:"provider_id,omitempty" json:"-"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	RefundedAt    *time.Time     `bson:"refunded_at,omitempty" json:"refunded_at,omitempty"`
}
