package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Suggestion is a scheduling proposal for a customer: a training slot plus
// a message, offered by a trainer.
type Suggestion struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	Message    string             `bson:"message" json:"message"`
	Slot       string             `bson:"slot" json:"slot"` // morning, afternoon, evening
	Trainer    string             `bson:"trainer" json:"trainer"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// AcceptedSuggestion is the suggestion a customer settled on. At most one
// per customer.
type AcceptedSuggestion struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	Message    string             `bson:"message" json:"message"`
	Slot       string             `bson:"slot" json:"slot"`
	Trainer    string             `bson:"trainer" json:"trainer"`
	AcceptedAt time.Time          `bson:"acceptedAt" json:"acceptedAt"`
}

// MoreSuggestionsStatus values for a customer's "send me more suggestions"
// request.
const (
	MoreSuggestionsRequested = "requested"
	MoreSuggestionsSent      = "sent"
	MoreSuggestionsDismissed = "dismissed"
)

// MoreSuggestionsRequest records that a customer asked for additional
// scheduling proposals, keyed by customer.
type MoreSuggestionsRequest struct {
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	Status     string             `bson:"status" json:"status"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
