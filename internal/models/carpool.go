package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CarpoolStatus string

const (
	CarpoolActive    CarpoolStatus = "active"
	CarpoolCancelled CarpoolStatus = "cancelled"
	CarpoolCompleted CarpoolStatus = "completed"
)

type Carpool struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DriverID       bson.ObjectID `bson:"driver_id" json:"driver_id"`
	StartLocation  string        `bson:"start_location" json:"start_location"`
	EndLocation    string        `bson:"end_location" json:"end_location"`
	DepartureTime  time.Time     `bson:"departure_time" json:"departure_time"`
	AvailableSeats int           `bson:"available_seats" json:"available_seats"`
	Price          float64       `bson:"price" json:"price"`
	Status         CarpoolStatus `bson:"status" json:"status"`
	CreatedAt      time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
