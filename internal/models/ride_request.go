package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

type RideRequest struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RiderID   bson.ObjectID `bson:"rider_id" json:"rider_id"`
	CarpoolID bson.ObjectID `bson:"carpool_id" json:"carpool_id"`
	Status    RequestStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
