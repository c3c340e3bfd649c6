package service

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
)

// CartService provides the session cart operations. Every mutation
// persists the whole cart and returns the updated snapshot so the caller
// can render totals without a second read.
type CartService interface {
	// Get returns the session's cart, creating an empty one in memory
	// (not persisted) when none exists yet.
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	// AddItem adds a catalog item to the cart, merging lines with an
	// identical merge key.
	AddItem(ctx context.Context, sessionID, itemID string, quantity int, notes string, customizations []string) (*model.Cart, error)
	// UpdateLineQuantity sets a line to an exact quantity; zero or less
	// removes the line.
	UpdateLineQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*model.Cart, error)
	// RemoveLine deletes a line from the cart.
	RemoveLine(ctx context.Context, sessionID, lineID string) (*model.Cart, error)
	// Clear empties the cart, keeping the customer and delivery state.
	Clear(ctx context.Context, sessionID string) (*model.Cart, error)
}

// CartServiceImpl implements CartService over the cart and menu stores.
type CartServiceImpl struct {
	carts repository.CartRepositoryInterface
	menu  repository.MenuRepositoryInterface
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepositoryInterface, menu repository.MenuRepositoryInterface) CartService {
	return &CartServiceImpl{carts: carts, menu: menu}
}

// Get returns the session's cart, or a fresh empty cart when none exists.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = model.NewCart(sessionID)
	}
	return cart, nil
}

// AddItem validates the item against the live catalog, merges it into the
// cart and persists the result.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, itemID string, quantity int, notes string, customizations []string) (*model.Cart, error) {
	item, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(*item, quantity, notes, customizations)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("add")
	return cart, nil
}

// UpdateLineQuantity sets a line to an exact quantity; zero or less
// removes the line.
func (s *CartServiceImpl) UpdateLineQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || !cart.UpdateQuantity(lineID, quantity) {
		return nil, ErrLineNotFound
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("update_quantity")
	return cart, nil
}

// RemoveLine deletes a line from the cart.
func (s *CartServiceImpl) RemoveLine(ctx context.Context, sessionID, lineID string) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || !cart.Remove(lineID) {
		return nil, ErrLineNotFound
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("remove")
	return cart, nil
}

// Clear empties the cart, keeping the customer and delivery state so the
// customer does not retype an address after starting over.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return model.NewCart(sessionID), nil
	}

	cart.Clear()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("clear")
	return cart, nil
}
