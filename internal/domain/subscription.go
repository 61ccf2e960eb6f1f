package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription is a studio membership plan customers can be signed up to
// through a package.
type Subscription struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Type           string             `bson:"type" json:"type"` // e.g. "inhouse", "mobile"
	ValidForOnsite bool               `bson:"validForOnsite" json:"validForOnsite"`
	ValidForMobile bool               `bson:"validForMobile" json:"validForMobile"`
	Active         bool               `bson:"active" json:"active"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
	Duration       string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Features       []string           `bson:"features,omitempty" json:"features,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
