package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. Index creation
// is idempotent, so this runs unconditionally at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		userCollection:         {Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		refreshCollection:      {Keys: bson.D{{Key: "refresh", Value: 1}}},
		questionCollection:     {Keys: bson.D{{Key: "created_at", Value: -1}}},
		answerCollection:       {Keys: bson.D{{Key: "question_id", Value: 1}}},
		newsCollection:         {Keys: bson.D{{Key: "url", Value: 1}}, Options: unique},
		regionalNewsCollection: {Keys: bson.D{{Key: "published_at", Value: -1}}},
		fraudCaseCollection: {Keys: bson.D{
			{Key: "city", Value: 1},
			{Key: "district", Value: 1},
			{Key: "neighborhood", Value: 1},
		}},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("mongo index %s: %w", coll, err)
		}
	}
	return nil
}
