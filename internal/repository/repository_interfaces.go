package repository

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// MenuRepositoryInterface provides catalog access. The storefront reads it;
// only the admin surface writes.
type MenuRepositoryInterface interface {
	List(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	Upsert(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) error
}

// RatiosRepositoryInterface stores the active ratio table.
type RatiosRepositoryInterface interface {
	GetActive(ctx context.Context) (*model.RatioTable, error)
	Save(ctx context.Context, table *model.RatioTable) error
}

// SettingsRepositoryInterface stores the active order settings.
type SettingsRepositoryInterface interface {
	GetActive(ctx context.Context) (*model.OrderSettings, error)
	Save(ctx context.Context, settings *model.OrderSettings) error
}

// CartRepositoryInterface stores session carts.
type CartRepositoryInterface interface {
	FindBySession(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// OrderRepositoryInterface stores submitted orders.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	ListRecent(ctx context.Context, limit, skip int) ([]model.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.Order, error)
}

// LogsRepositoryInterface stores request and audit logs.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// AdminRepositoryInterface stores admin users for the management surface.
type AdminRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
}
