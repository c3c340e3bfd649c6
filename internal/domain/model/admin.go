package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser can edit the menu catalog, ratio table and order settings.
// The storefront itself is anonymous; only the admin surface authenticates.
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
