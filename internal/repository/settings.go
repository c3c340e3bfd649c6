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

// settingsDocument wraps order settings with the active flag.
type settingsDocument struct {
	Active   bool                `bson:"active"`
	Settings model.OrderSettings `bson:"settings"`
}

// SettingsRepository stores the active order settings.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{collection: db.Settings}
}

// GetActive returns the active settings, or nil when none are stored.
func (r *SettingsRepository) GetActive(ctx context.Context) (*model.OrderSettings, error) {
	var doc settingsDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

// Save replaces the active settings.
func (r *SettingsRepository) Save(ctx context.Context, settings *model.OrderSettings) error {
	settings.UpdatedAt = time.Now()
	doc := settingsDocument{Active: true, Settings: *settings}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"active": true}, doc, opts)
	return err
}
