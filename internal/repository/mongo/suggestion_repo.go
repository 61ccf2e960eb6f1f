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

const (
	suggestionCollectionName      = "suggestions"
	acceptedSuggestionCollection  = "accepted_suggestions"
	moreSuggestionsCollectionName = "more_suggestion_requests"
)

// mongoSuggestionRepository implements repository.SuggestionRepository
// across the three suggestion-related collections.
type mongoSuggestionRepository struct {
	suggestions *mongo.Collection
	accepted    *mongo.Collection
	more        *mongo.Collection
}

func NewMongoSuggestionRepository(db *mongo.Database) repository.SuggestionRepository {
	return &mongoSuggestionRepository{
		suggestions: db.Collection(suggestionCollectionName),
		accepted:    db.Collection(acceptedSuggestionCollection),
		more:        db.Collection(moreSuggestionsCollectionName),
	}
}

// Add appends a scheduling proposal for a customer.
func (r *mongoSuggestionRepository) Add(ctx context.Context, suggestion *domain.Suggestion) (primitive.ObjectID, error) {
	if suggestion.CustomerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("suggestion customer is required")
	}

	suggestion.ID = primitive.NewObjectID()
	suggestion.CreatedAt = time.Now().UTC()

	result, err := r.suggestions.InsertOne(ctx, suggestion)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListByCustomerID retrieves all proposals made for a customer.
func (r *mongoSuggestionRepository) ListByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Suggestion, error) {
	cursor, err := r.suggestions.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := []domain.Suggestion{}
	if err = cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// GetAccepted retrieves the suggestion the customer settled on, if any.
func (r *mongoSuggestionRepository) GetAccepted(ctx context.Context, customerID primitive.ObjectID) (*domain.AcceptedSuggestion, error) {
	var accepted domain.AcceptedSuggestion
	err := r.accepted.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&accepted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &accepted, nil
}

// SetAccepted upserts the customer's accepted suggestion; at most one per
// customer.
func (r *mongoSuggestionRepository) SetAccepted(ctx context.Context, accepted *domain.AcceptedSuggestion) error {
	accepted.AcceptedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"customerId": accepted.CustomerID,
		"message":    accepted.Message,
		"slot":       accepted.Slot,
		"trainer":    accepted.Trainer,
		"acceptedAt": accepted.AcceptedAt,
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.accepted.UpdateOne(ctx, bson.M{"customerId": accepted.CustomerID}, update, opts)
	return err
}

// GetMoreStatus reads the customer's "more suggestions" marker.
func (r *mongoSuggestionRepository) GetMoreStatus(ctx context.Context, customerID primitive.ObjectID) (string, error) {
	var request domain.MoreSuggestionsRequest
	err := r.more.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return request.Status, nil
}

// SetMoreStatus upserts the customer's "more suggestions" marker.
func (r *mongoSuggestionRepository) SetMoreStatus(ctx context.Context, customerID primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{
		"customerId": customerID,
		"status":     status,
		"updatedAt":  time.Now().UTC(),
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.more.UpdateOne(ctx, bson.M{"customerId": customerID}, update, opts)
	return err
}

// EnsureSuggestionIndexes creates indexes for the suggestion collections.
func EnsureSuggestionIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(suggestionCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}},
	})
	if err != nil {
		return err
	}

	unique := options.Index().SetUnique(true)
	_, err = db.Collection(acceptedSuggestionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(moreSuggestionsCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
