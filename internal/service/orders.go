package service

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// OrderBrowser exposes read access to submitted orders for the back office.
type OrderBrowser interface {
	// ListOrders returns stored orders, newest first.
	ListOrders(ctx context.Context, limit, skip int) ([]model.Order, error)
	// GetOrder returns one order by id, or ErrOrderNotFound.
	GetOrder(ctx context.Context, id string) (*model.Order, error)
}

// OrderBrowserImpl implements OrderBrowser over the order repository.
type OrderBrowserImpl struct {
	orders repository.OrderRepositoryInterface
}

// NewOrderBrowser creates a new OrderBrowser.
func NewOrderBrowser(orders repository.OrderRepositoryInterface) *OrderBrowserImpl {
	return &OrderBrowserImpl{orders: orders}
}

const (
	defaultOrderPageSize = 50
	maxOrderPageSize     = 500
)

// ListOrders returns stored orders, newest first.
func (s *OrderBrowserImpl) ListOrders(ctx context.Context, limit, skip int) ([]model.Order, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return s.orders.ListRecent(ctx, limit, skip)
}

// GetOrder returns one order by id.
func (s *OrderBrowserImpl) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
