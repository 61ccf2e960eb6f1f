package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification kinds dispatched by the backend.
const (
	NotificationPackageCreated      = "package_created"
	NotificationSubscriptionCreated = "subscription_created"
	NotificationProgressUpdate      = "progress_update"
)

// NotificationDetails carries the displayable title/content pair.
type NotificationDetails struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// Notification is an append-only per-recipient message entry. Customer and
// trainer notifications live in separate collections but share this shape.
type Notification struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	NotifID     string              `bson:"id" json:"id"` // stable id handed to clients
	RecipientID primitive.ObjectID  `bson:"recipientId" json:"recipientId"`
	Message     string              `bson:"message" json:"message"`
	Read        bool                `bson:"read" json:"read"`
	Timestamp   time.Time           `bson:"timestamp" json:"timestamp"`
	TrainerID   primitive.ObjectID  `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	CustomerID  *primitive.ObjectID `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Type        string              `bson:"type" json:"type"`
	Details     NotificationDetails `bson:"details" json:"details"`

	// Optional cross-references carried by trainer notifications.
	PackageID *primitive.ObjectID `bson:"packageId,omitempty" json:"packageId,omitempty"`
}
