// Package repository persists the session credentials handed out by the
// upstream API, in memory or in MongoDB.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pingTimeout = 2 * time.Second

// MongoOption tunes the client options before connecting.
type MongoOption func(*options.ClientOptions)

// WithPoolSize bounds the connection pool. One session needs very few
// connections, so the defaults are small.
func WithPoolSize(minSize, maxSize uint64) MongoOption {
	return func(o *options.ClientOptions) {
		o.SetMinPoolSize(minSize).SetMaxPoolSize(maxSize)
	}
}

// WithServerSelectionTimeout limits how long an operation waits for a
// reachable server. Startup fails over to memory after this long.
func WithServerSelectionTimeout(d time.Duration) MongoOption {
	return func(o *options.ClientOptions) {
		o.SetServerSelectionTimeout(d)
	}
}

// MongoDB holds the connection and the credentials collection.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Credentials *mongo.Collection
}

// ConnectMongo connects to uri, pings the server and ensures the expiry
// index on the credentials collection.
func ConnectMongo(ctx context.Context, uri, databaseName string, opts ...MongoOption) (*MongoDB, error) {
	// URI parameters override the defaults, options override both.
	clientOptions := options.Client().
		SetMinPoolSize(1).
		SetMaxPoolSize(4).
		SetMaxConnIdleTime(10 * time.Minute).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true).
		ApplyURI(uri)
	for _, opt := range opts {
		opt(clientOptions)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:      client,
		Database:    db,
		Credentials: db.Collection(credentialsCollection),
	}

	if err := m.HealthCheck(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := m.ensureExpiryIndex(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create expiry index: %w", err)
	}
	return m, nil
}

// ensureExpiryIndex lets MongoDB drop credentials once expires_at passes.
func (m *MongoDB) ensureExpiryIndex(ctx context.Context) error {
	_, err := m.Credentials.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetName("credentials_expiry").SetExpireAfterSeconds(0),
	})
	return err
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
