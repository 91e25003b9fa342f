package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotificationType string

const (
	NotifyRideRequest  NotificationType = "RideRequest"
	NotifyVerification NotificationType = "Verification"
	NotifyCancellation NotificationType = "Cancellation"
	NotifyReminder     NotificationType = "Reminder"
	NotifyPayment      NotificationType = "Payment"
)

type Ref struct {
	Entity string        `bson:"entity" json:"entity"`
	ID     bson.ObjectID `bson:"id" json:"id"`
}

// Notification documents expire 30 days after created_at via a TTL index.
type Notification struct {
	ID            bson.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        bson.ObjectID    `bson:"user_id" json:"user_id"`
	Message       string           `bson:"message" json:"message"`
	Type          NotificationType `bson:"type" json:"type"`
	RelatedEntity Ref              `bson:"related_entity,omitempty" json:"related_entity,omitempty"`
	Read          bool             `bson:"read" json:"read"`
	CreatedAt     time.Time        `bson:"created_at" json:"created_at"`
}
