package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// MenuService provides catalog operations. Public handlers only list
// available items; the admin surface sees and edits everything.
type MenuService interface {
	// ListAvailable returns the items shown on the storefront.
	ListAvailable(ctx context.Context) ([]model.MenuItem, error)
	// ListAll returns the full catalog including unavailable items.
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	// Get returns one item or ErrItemNotFound.
	Get(ctx context.Context, id string) (*model.MenuItem, error)
	// Upsert creates or replaces a catalog entry.
	Upsert(ctx context.Context, item *model.MenuItem) error
	// Delete removes a catalog entry. Carted lines referencing it keep
	// their snapshotted name and price.
	Delete(ctx context.Context, id string) error
}

// MenuServiceImpl implements MenuService.
type MenuServiceImpl struct {
	repo repository.MenuRepositoryInterface
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepositoryInterface) MenuService {
	return &MenuServiceImpl{repo: repo}
}

// ListAvailable returns the items shown on the storefront.
func (s *MenuServiceImpl) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns the full catalog including unavailable items.
func (s *MenuServiceImpl) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.repo.List(ctx, false)
}

// Get returns one item or ErrItemNotFound.
func (s *MenuServiceImpl) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Upsert creates or replaces a catalog entry.
func (s *MenuServiceImpl) Upsert(ctx context.Context, item *model.MenuItem) error {
	start := time.Now()
	if err := s.repo.Upsert(ctx, item); err != nil {
		return err
	}
	log.Debug().
		Str("item_id", item.ID).
		Str("category", string(item.Category)).
		Dur("duration", time.Since(start)).
		Msg("menu item upserted")
	return nil
}

// Delete removes a catalog entry.
func (s *MenuServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
