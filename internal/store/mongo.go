package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opencatalog/shopping-api/internal/domain"
)

// collectionName is the collection holding product documents.
const collectionName = "product"

// Store is the document store surface the catalog core depends on. The core
// never manages the connection lifecycle; it only issues these four calls.
type Store interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Distinct(ctx context.Context, field string) ([]interface{}, error)
}

// MongoStore is the MongoDB-backed Store implementation.
type MongoStore struct {
	client     *mongo.Client
	database   *mongo.Database
	collection *mongo.Collection
	logger     hclog.Logger
}

// Connect dials the MongoDB deployment at uri and verifies it with a ping.
// The returned store reads and writes the product collection of dbName.
func Connect(ctx context.Context, uri, dbName string, logger hclog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to document store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging document store: %w", err)
	}

	db := client.Database(dbName)

	return &MongoStore{
		client:     client,
		database:   db,
		collection: db.Collection(collectionName),
		logger:     logger,
	}, nil
}

func (s *MongoStore) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *MongoStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

func (s *MongoStore) Distinct(ctx context.Context, field string) ([]interface{}, error) {
	return s.collection.Distinct(ctx, field, bson.M{})
}

// Collections lists the collection names of the backing database. Used by
// the diagnostics endpoint only.
func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.database.ListCollectionNames(ctx, bson.M{})
}

// DatabaseName returns the name of the backing database.
func (s *MongoStore) DatabaseName() string {
	return s.database.Name()
}

func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
