package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string        `bson:"name" json:"name"`
	Email          string        `bson:"email" json:"email"`
	PasswordHash   string        `bson:"password_hash,omitempty" json:"-"`
	Phone          string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string        `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	IsDriver       bool          `bson:"is_driver" json:"is_driver"`
	IsAdmin        bool          `bson:"is_admin" json:"is_admin"`
	IsVerified     bool          `bson:"is_verified" json:"is_verified"`

	PreferredPaymentMethods []string `bson:"preferred_payment_methods,omitempty" json:"preferred_payment_methods,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
