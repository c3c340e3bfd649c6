// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	MenuItems *mongo.Collection
	Ratios    *mongo.Collection
	Settings  *mongo.Collection
	Carts     *mongo.Collection
	Orders    *mongo.Collection
	Logs      *mongo.Collection
	Admins    *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom
// configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		MenuItems: db.Collection("menu_items"),
		Ratios:    db.Collection("ratio_tables"),
		Settings:  db.Collection("order_settings"),
		Carts:     db.Collection("carts"),
		Orders:    db.Collection("orders"),
		Logs:      db.Collection("logs"),
		Admins:    db.Collection("admins"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes each collection relies on.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Menu items are listed by category and filtered by availability.
	menuIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "available", Value: 1}},
	}
	if _, err := m.MenuItems.Indexes().CreateOne(ctx, menuIndex); err != nil {
		return err
	}

	// Active configuration lookups.
	activeIndex := mongo.IndexModel{Keys: bson.D{{Key: "active", Value: 1}}}
	_, _ = m.Ratios.Indexes().CreateOne(ctx, activeIndex)
	_, _ = m.Settings.Indexes().CreateOne(ctx, activeIndex)

	// Abandoned carts expire after updated_at + TTL set below.
	cartTTLIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32((30 * 24 * time.Hour).Seconds())),
	}
	_, _ = m.Carts.Indexes().CreateOne(ctx, cartTTLIndex)

	// Orders are listed by session and by submission time.
	orderIndex := mongo.IndexModel{Keys: bson.D{{Key: "session_id", Value: 1}}}
	_, _ = m.Orders.Indexes().CreateOne(ctx, orderIndex)
	orderTimeIndex := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	_, _ = m.Orders.Indexes().CreateOne(ctx, orderTimeIndex)

	// Logs are queried by request id; the TTL index is managed by SetLogsTTL.
	requestIDIndex := mongo.IndexModel{Keys: bson.D{{Key: "request_id", Value: 1}}}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	// Admin emails are unique.
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Admins.Indexes().CreateOne(ctx, emailIndex)

	return nil
}

// SetLogsTTL updates the TTL index for the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// Drop any existing TTL index first; it may carry a different TTL.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
