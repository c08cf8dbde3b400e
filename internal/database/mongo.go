package database

import (
	"context"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoDatabase = "test"

// MongoStore exposes the collections of one MongoDB database.  A zero
// MongoStore has no handle and reports itself unavailable.
type MongoStore struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// OpenMongo connects to uri and pings the primary.  The database is name,
// or the one in the URI path, or "test".
func OpenMongo(ctx context.Context, uri, name string) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri)
	if dl, ok := ctx.Deadline(); ok {
		opts.SetServerSelectionTimeout(timeUntil(dl))
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if name == "" {
		name = mongoDatabaseFromURI(uri)
	}
	return &MongoStore{Client: client, DB: client.Database(name)}, nil
}

func (s *MongoStore) IsAvailable() bool { return s != nil && s.DB != nil }

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	if !s.IsAvailable() {
		return nil, ErrNotInitialized
	}
	names, err := s.DB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}

func mongoDatabaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}
