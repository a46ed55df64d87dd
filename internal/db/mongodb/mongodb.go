package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	usersCollection    = "users"
	postsCollection    = "posts"
	commentsCollection = "comments"
)

// Connect opens a client, verifies the deployment is reachable, and
// returns the handle. The caller owns the lifecycle and must call
// Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. Safe to
// call on every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	postIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(postsCollection).Indexes().CreateMany(ctx, postIndexes); err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "postId", Value: 1}}},
	}
	if _, err := db.Collection(commentsCollection).Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}

	return nil
}
