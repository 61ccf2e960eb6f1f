package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestStatus tracks the handling state of a customer request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
	RequestResolved RequestStatus = "resolved"
)

// Request is a customer-submitted request (scheduling, plan change, ...)
// shown to studio staff newest first.
type Request struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Type       string             `bson:"type" json:"type"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	Status     RequestStatus      `bson:"status" json:"status"`
	DateTime   time.Time          `bson:"datetime" json:"datetime"`
}
