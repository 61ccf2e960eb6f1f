package repository

import (
	"context"

	"pushpull/studio-admin/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Trainers and customers share one collection, discriminated by role.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	MarkFreeTrial(ctx context.Context, customerID primitive.ObjectID) error
}

// PackageRepository defines the interface for interacting with package data.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	ListByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Package, error)
	ListByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SubscriptionRepository defines the interface for interacting with
// subscription data.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RequestRepository defines the interface for interacting with customer
// request data.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RequestStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SuggestionRepository covers scheduling proposals: pending suggestions,
// the accepted one and "more suggestions please" markers, all keyed by
// customer.
type SuggestionRepository interface {
	Add(ctx context.Context, suggestion *domain.Suggestion) (primitive.ObjectID, error)
	ListByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Suggestion, error)
	GetAccepted(ctx context.Context, customerID primitive.ObjectID) (*domain.AcceptedSuggestion, error)
	SetAccepted(ctx context.Context, accepted *domain.AcceptedSuggestion) error
	GetMoreStatus(ctx context.Context, customerID primitive.ObjectID) (string, error)
	SetMoreStatus(ctx context.Context, customerID primitive.ObjectID, status string) error
}

// NotificationRepository appends and reads per-recipient notification
// lists. Audience separates customer-facing from trainer-facing lists.
type NotificationRepository interface {
	Append(ctx context.Context, audience domain.Role, notification *domain.Notification) error
	ListByRecipient(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID, notifID string) error
}

// ChatRepository appends and reads messages of a trainer/customer
// conversation.
type ChatRepository interface {
	Append(ctx context.Context, message *domain.ChatMessage) (primitive.ObjectID, error)
	ListByPair(ctx context.Context, trainerID, customerID primitive.ObjectID) ([]domain.ChatMessage, error)
}
