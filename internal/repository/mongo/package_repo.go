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

const packageCollectionName = "packages"

// mongoPackageRepository implements repository.PackageRepository using MongoDB.
type mongoPackageRepository struct {
	collection *mongo.Collection
}

func NewMongoPackageRepository(db *mongo.Database) repository.PackageRepository {
	return &mongoPackageRepository{
		collection: db.Collection(packageCollectionName),
	}
}

// Create inserts a new package.
func (r *mongoPackageRepository) Create(ctx context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	if pkg.CustomerID == primitive.NilObjectID || pkg.TrainerID == primitive.NilObjectID || pkg.Title == "" {
		return primitive.NilObjectID, errors.New("package customer, trainer and title are required")
	}

	pkg.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	if pkg.Plans == nil {
		pkg.Plans = []domain.Plan{}
	}

	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a package by id.
func (r *mongoPackageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	var pkg domain.Package
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// List retrieves all packages in insertion order.
func (r *mongoPackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	return r.find(ctx, bson.M{})
}

// ListByTrainerID retrieves the packages a trainer created.
func (r *mongoPackageRepository) ListByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Package, error) {
	return r.find(ctx, bson.M{"trainerId": trainerID})
}

// ListByCustomerID retrieves the packages belonging to a customer.
func (r *mongoPackageRepository) ListByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Package, error) {
	return r.find(ctx, bson.M{"customerId": customerID})
}

func (r *mongoPackageRepository) find(ctx context.Context, filter bson.M) ([]domain.Package, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pkgs := []domain.Package{}
	if err = cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

// Update replaces the mutable fields of a package.
func (r *mongoPackageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	update := bson.M{"$set": bson.M{
		"title":                 pkg.Title,
		"customerGoal":          pkg.CustomerGoal,
		"height":                pkg.Height,
		"weight":                pkg.Weight,
		"plans":                 pkg.Plans,
		"isFreeTrial":           pkg.IsFreeTrial,
		"subscriptionId":        pkg.SubscriptionID,
		"subscriptionStartDate": pkg.SubscriptionStartDate,
		"subscriptionEndDate":   pkg.SubscriptionEndDate,
		"updatedAt":             time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": pkg.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a package.
func (r *mongoPackageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePackageIndexes creates necessary indexes for the packages collection.
func EnsurePackageIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "subscriptionId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
