package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type Verification struct {
	ID           bson.ObjectID      `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       bson.ObjectID      `bson:"user_id" json:"user_id"`
	DocumentType string             `bson:"document_type" json:"document_type"`
	DocumentRef  string             `bson:"document_ref" json:"document_ref"`
	Status       VerificationStatus `bson:"status" json:"status"`
	ReviewedBy   *bson.ObjectID     `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
