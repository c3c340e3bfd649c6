package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// AdminRepository stores admin users for the management surface.
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new admin user repository.
func NewAdminRepository(db *MongoDB) *AdminRepository {
	return &AdminRepository{collection: db.Admins}
}

// FindByEmail returns the admin with the given email, or nil when absent.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the admin user.
func (r *AdminRepository) Create(ctx context.Context, user *model.AdminUser) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, user)
	return err
}
