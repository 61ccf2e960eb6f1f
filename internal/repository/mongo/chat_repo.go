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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollectionName = "chat_messages"

// mongoChatRepository implements repository.ChatRepository using MongoDB.
type mongoChatRepository struct {
	collection *mongo.Collection
}

func NewMongoChatRepository(db *mongo.Database) repository.ChatRepository {
	return &mongoChatRepository{
		collection: db.Collection(chatCollectionName),
	}
}

// Append adds a message to the trainer/customer conversation.
func (r *mongoChatRepository) Append(ctx context.Context, message *domain.ChatMessage) (primitive.ObjectID, error) {
	if message.TrainerID == primitive.NilObjectID || message.CustomerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("chat trainer and customer are required")
	}

	message.ID = primitive.NewObjectID()
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListByPair retrieves the conversation between a trainer and a customer
// in chronological order.
func (r *mongoChatRepository) ListByPair(ctx context.Context, trainerID, customerID primitive.ObjectID) ([]domain.ChatMessage, error) {
	filter := bson.M{"trainerId": trainerID, "customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []domain.ChatMessage{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// EnsureChatIndexes creates necessary indexes for the chat collection.
func EnsureChatIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "trainerId", Value: 1},
			{Key: "customerId", Value: 1},
			{Key: "timestamp", Value: 1},
		},
	})
	return err
}
