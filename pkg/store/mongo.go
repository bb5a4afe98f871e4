package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/arbor/pkg/tree"
)

// MongoStore keeps entries in a MongoDB collection, one document per tree.
// The entry name is the unique key; saves upsert on it.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and uses the
// trees collection of the given database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("trees"),
	}, nil
}

// Save stores the tree under name, replacing any existing document.
func (s *MongoStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	prev, err := s.Load(ctx, name)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	entry, err := newEntry(name, root, prev)
	if err != nil {
		return nil, err
	}
	err = RetryWithBackoff(ctx, func() error {
		_, err := s.coll.ReplaceOne(ctx,
			bson.M{"name": name}, entry, options.Replace().SetUpsert(true))
		return Retryable(err)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Load retrieves the entry stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) (*Entry, error) {
	var entry Entry
	err := RetryWithBackoff(ctx, func() error {
		err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&entry)
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return Retryable(err)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all stored entries ordered by name.
func (s *MongoStore) List(ctx context.Context) ([]Info, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var infos []Info
	for cursor.Next(ctx) {
		var entry Entry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		infos = append(infos, infoOf(&entry))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Delete removes the entry stored under name; missing entries are ignored.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	return RetryWithBackoff(ctx, func() error {
		_, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
		return Retryable(err)
	})
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
