package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// OrderRepository stores submitted orders.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{collection: db.Orders}
}

// Create inserts the order.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID returns the order with the given id, or nil when absent.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListRecent returns stored orders, newest first.
func (r *OrderRepository) ListRecent(ctx context.Context, limit, skip int) ([]model.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListBySession returns the session's orders, newest first.
func (r *OrderRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
