package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback links two users via a shared carpool. One document per
// (carpool_id, given_by) pair, backed by a unique index.
type Feedback struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CarpoolID bson.ObjectID `bson:"carpool_id" json:"carpool_id"`
	GivenBy   bson.ObjectID `bson:"given_by" json:"given_by"`
	GivenTo   bson.ObjectID `bson:"given_to" json:"given_to"`
	Rating    int           `bson:"rating" json:"rating"`
	Comments  string        `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
