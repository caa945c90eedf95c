package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds the document store connection settings.
type Config struct {
	URL  string // connection URI
	Name string // database name
}

// Client wraps the MongoDB client and the database handle the API uses.
// A nil *Client is a valid "store not configured" state; callers that hold
// an optional store must check for it explicitly.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to the document store and verifies it
// with a ping.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	opts := options.Client().ApplyURI(cfg.URL)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to reach document store: %w", err)
	}
	return &Client{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Database returns the underlying database handle, or nil when the client
// was created without one.
func (c *Client) Database() *mongo.Database {
	if c == nil {
		return nil
	}
	return c.db
}

// Initialized reports whether the client holds a database handle.
func (c *Client) Initialized() bool {
	return c != nil && c.db != nil
}

// Name returns the connected database name.
func (c *Client) Name() string {
	if c == nil || c.db == nil {
		return ""
	}
	return c.db.Name()
}

// Collections lists the collection names present in the database.
func (c *Client) Collections(ctx context.Context) ([]string, error) {
	if c == nil || c.db == nil {
		return nil, ErrUnavailable
	}
	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Disconnect closes the underlying connection.
func (c *Client) Disconnect(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
