package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// MenuRepository provides MongoDB-backed catalog access.
type MenuRepository struct {
	collection *mongo.Collection
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *MongoDB) *MenuRepository {
	return &MenuRepository{collection: db.MenuItems}
}

// List returns catalog entries sorted by category then name. With
// onlyAvailable set, unavailable items are filtered out.
func (r *MenuRepository) List(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name.primary", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns the item with the given id, or nil when absent.
func (r *MenuRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert creates or replaces the catalog entry with the item's id.
func (r *MenuRepository) Upsert(ctx context.Context, item *model.MenuItem) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item, opts)
	return err
}

// Delete removes the catalog entry. Deleting an absent entry is not an
// error.
func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
