package mongo

import (
	"context"
	"errors"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const subscriptionCollectionName = "subscriptions"

// mongoSubscriptionRepository implements repository.SubscriptionRepository using MongoDB.
type mongoSubscriptionRepository struct {
	collection *mongo.Collection
}

func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &mongoSubscriptionRepository{
		collection: db.Collection(subscriptionCollectionName),
	}
}

// Create inserts a new subscription with its creation timestamp.
func (r *mongoSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	if sub.Name == "" || sub.Type == "" {
		return primitive.NilObjectID, errors.New("subscription name and type are required")
	}

	sub.ID = primitive.NewObjectID()
	sub.CreatedAt = time.Now().UTC()
	sub.UpdatedAt = nil

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a subscription by id.
func (r *mongoSubscriptionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// List retrieves all subscriptions in insertion order.
func (r *mongoSubscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []domain.Subscription{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Update replaces the mutable fields of a subscription and stamps
// updatedAt.
func (r *mongoSubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":           sub.Name,
		"description":    sub.Description,
		"type":           sub.Type,
		"validForOnsite": sub.ValidForOnsite,
		"validForMobile": sub.ValidForMobile,
		"active":         sub.Active,
		"price":          sub.Price,
		"duration":       sub.Duration,
		"features":       sub.Features,
		"updatedAt":      now,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": sub.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	sub.UpdatedAt = &now
	return nil
}

// Delete removes a subscription. Packages referencing it keep their
// dangling id and render the subscription as unknown.
func (r *mongoSubscriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
