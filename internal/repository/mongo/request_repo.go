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

const requestCollectionName = "requests"

// mongoRequestRepository implements repository.RequestRepository using MongoDB.
type mongoRequestRepository struct {
	collection *mongo.Collection
}

func NewMongoRequestRepository(db *mongo.Database) repository.RequestRepository {
	return &mongoRequestRepository{
		collection: db.Collection(requestCollectionName),
	}
}

// Create inserts a new customer request.
func (r *mongoRequestRepository) Create(ctx context.Context, request *domain.Request) (primitive.ObjectID, error) {
	if request.CustomerID == primitive.NilObjectID || request.Title == "" {
		return primitive.NilObjectID, errors.New("request customer and title are required")
	}

	request.ID = primitive.NewObjectID()
	if request.Status == "" {
		request.Status = domain.RequestPending
	}
	if request.DateTime.IsZero() {
		request.DateTime = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a request by id.
func (r *mongoRequestRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Request, error) {
	var request domain.Request
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// List retrieves all requests. Newest-first ordering belongs to view
// assembly, not the store.
func (r *mongoRequestRepository) List(ctx context.Context) ([]domain.Request, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []domain.Request{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus moves a request through its lifecycle.
func (r *mongoRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RequestStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a request.
func (r *mongoRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRequestIndexes creates necessary indexes for the requests collection.
func EnsureRequestIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "datetime", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
