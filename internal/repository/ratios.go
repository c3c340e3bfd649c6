package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// ratioDocument wraps the ratio table with the active flag used to select
// the current configuration.
type ratioDocument struct {
	Active bool             `bson:"active"`
	Table  model.RatioTable `bson:"table"`
}

// RatiosRepository stores the active ratio table.
type RatiosRepository struct {
	collection *mongo.Collection
}

// NewRatiosRepository creates a new ratios repository.
func NewRatiosRepository(db *MongoDB) *RatiosRepository {
	return &RatiosRepository{collection: db.Ratios}
}

// GetActive returns the active ratio table, or nil when none is stored.
func (r *RatiosRepository) GetActive(ctx context.Context) (*model.RatioTable, error) {
	var doc ratioDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Table, nil
}

// Save replaces the active ratio table.
func (r *RatiosRepository) Save(ctx context.Context, table *model.RatioTable) error {
	table.UpdatedAt = time.Now()
	doc := ratioDocument{Active: true, Table: *table}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"active": true}, doc, opts)
	return err
}
