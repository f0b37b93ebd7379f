package repository

import (
	"context"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLookupLogRepository implements LookupLogRepository
type MongoLookupLogRepository struct {
	collection *mongo.Collection
}

// NewMongoLookupLogRepository creates a new lookup audit repository
func NewMongoLookupLogRepository(db *mongo.Database) repository.LookupLogRepository {
	collection := db.Collection("lookup_log")

	// Index on createdAt for recent-history queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoLookupLogRepository{
		collection: collection,
	}
}

// Append stores one audit record. Records are never updated or deleted.
func (r *MongoLookupLogRepository) Append(ctx context.Context, record *entity.LookupRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindRecent returns the most recent audit records, newest first
func (r *MongoLookupLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.LookupRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []entity.LookupRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
