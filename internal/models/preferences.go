package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GeoPoint is a GeoJSON point, [longitude, latitude].
type GeoPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

type CommuteDetails struct {
	DepartureLocation GeoPoint `bson:"departure_location" json:"departure_location"`
	Destination       GeoPoint `bson:"destination" json:"destination"`
}

type UserPreferences struct {
	ID              bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          bson.ObjectID  `bson:"user_id" json:"user_id"`
	Commute         CommuteDetails `bson:"commute" json:"commute"`
	PreferredTimes  []string       `bson:"preferred_times,omitempty" json:"preferred_times,omitempty"`
	MaxPrice        float64        `bson:"max_price,omitempty" json:"max_price,omitempty"`
	PreferredGender string         `bson:"preferred_gender,omitempty" json:"preferred_gender,omitempty"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}
