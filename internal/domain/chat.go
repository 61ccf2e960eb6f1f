package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is a single message in a trainer/customer conversation.
// Messages are append-only; the conversation is identified by the
// trainer/customer pair.
type ChatMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID  primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	SenderID   primitive.ObjectID `bson:"senderId" json:"senderId"`
	Text       string             `bson:"text" json:"text"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
