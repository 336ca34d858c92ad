// Package database owns the MongoDB connection for the storefront.
//
// All application data lives in one database: the products, articles and
// users collections, the counters collection backing product ID
// allocation, and (optionally) the logs collection.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terry1921/stickerstore/config"
)

// Collection names. The counter for product IDs lives in Counters under
// the key "products".
const (
	Products = "products"
	Articles = "articles"
	Users    = "users"
	Counters = "counters"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect dials MongoDB and verifies the connection. Returns an error
// instead of exiting so the caller can shut down gracefully.
func Connect(ctx context.Context) error {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDB())
	return nil
}

// Disconnect closes the Mongo connection.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the read paths rely on: newest-first
// listings for products and articles, a status index for moderation
// views, and a unique email per user record.
func EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	createdDesc := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}

	if _, err := DB.Collection(Products).Indexes().CreateOne(ctx, createdDesc); err != nil {
		return fmt.Errorf("database: products index: %w", err)
	}

	articleIdx := []mongo.IndexModel{
		createdDesc,
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := DB.Collection(Articles).Indexes().CreateMany(ctx, articleIdx); err != nil {
		return fmt.Errorf("database: articles indexes: %w", err)
	}

	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := DB.Collection(Users).Indexes().CreateOne(ctx, emailUnique); err != nil {
		return fmt.Errorf("database: users index: %w", err)
	}

	return nil
}
