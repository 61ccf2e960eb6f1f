package mongo

import (
	"context"
	"errors"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customerNotificationCollection = "customer_notifications"
	trainerNotificationCollection  = "trainer_notifications"
)

// mongoNotificationRepository implements repository.NotificationRepository.
// Customer-facing and trainer-facing notifications live in separate
// append-only collections, selected by audience role.
type mongoNotificationRepository struct {
	customer *mongo.Collection
	trainer  *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{
		customer: db.Collection(customerNotificationCollection),
		trainer:  db.Collection(trainerNotificationCollection),
	}
}

func (r *mongoNotificationRepository) forAudience(audience domain.Role) (*mongo.Collection, error) {
	switch audience {
	case domain.RoleCustomer:
		return r.customer, nil
	case domain.RoleTrainer:
		return r.trainer, nil
	default:
		return nil, errors.New("unknown notification audience")
	}
}

// Append adds an entry to the recipient's notification list.
func (r *mongoNotificationRepository) Append(ctx context.Context, audience domain.Role, notification *domain.Notification) error {
	collection, err := r.forAudience(audience)
	if err != nil {
		return err
	}

	notification.ID = primitive.NewObjectID()
	_, err = collection.InsertOne(ctx, notification)
	return err
}

// ListByRecipient retrieves a recipient's notifications, newest first.
func (r *mongoNotificationRepository) ListByRecipient(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID) ([]domain.Notification, error) {
	collection, err := r.forAudience(audience)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"recipientId": recipientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []domain.Notification{}
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips the read flag on one notification.
func (r *mongoNotificationRepository) MarkRead(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID, notifID string) error {
	collection, err := r.forAudience(audience)
	if err != nil {
		return err
	}

	filter := bson.M{"recipientId": recipientID, "id": notifID}
	result, err := collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureNotificationIndexes creates indexes for both notification
// collections.
func EnsureNotificationIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{customerNotificationCollection, trainerNotificationCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "timestamp", Value: -1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
