package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Chat struct {
	ID             bson.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	ParticipantIDs []bson.ObjectID `bson:"participant_ids" json:"participant_ids"`
	CarpoolID      bson.ObjectID   `bson:"carpool_id" json:"carpool_id"`
	LastMessage    string          `bson:"last_message,omitempty" json:"last_message,omitempty"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

type Message struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ChatID    bson.ObjectID `bson:"chat_id" json:"chat_id"`
	SenderID  bson.ObjectID `bson:"sender_id" json:"sender_id"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
