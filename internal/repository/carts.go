package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// CartRepository stores session carts keyed by session id.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{collection: db.Carts}
}

// FindBySession returns the cart for the session, or nil when none exists.
func (r *CartRepository) FindBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the whole cart document.
func (r *CartRepository) Save(ctx context.Context, cart *model.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cart.SessionID}, cart, opts)
	return err
}

// Delete removes the session's cart. Deleting an absent cart is not an
// error.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}
