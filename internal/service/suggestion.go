package service

import (
	"context"
	"math"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
)

// QuantitySuggester computes pre-fill quantities for menu items from the
// session's event configuration. Suggestions are advisory defaults: the
// customer can always override them, and nothing downstream depends on a
// carted quantity matching the suggestion.
type QuantitySuggester interface {
	// Suggest returns the suggested quantity for one item. cartedQty is
	// the quantity of the same catalog item already in the cart; pass 0
	// when the cart is empty or unknown.
	Suggest(ctx context.Context, cfg model.EventConfig, itemID string, cartedQty int) (int, error)
}

// SuggestionOption configures a SuggestionService.
type SuggestionOption func(*SuggestionService)

// SuggestionService implements QuantitySuggester against the live catalog,
// ratio table and order settings. Configuration is read on every call so
// admin edits take effect immediately.
type SuggestionService struct {
	menu     repository.MenuRepositoryInterface
	ratios   repository.RatiosRepositoryInterface
	settings repository.SettingsRepositoryInterface

	defaultTrayCapacity int
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(
	menu repository.MenuRepositoryInterface,
	ratios repository.RatiosRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	opts ...SuggestionOption,
) *SuggestionService {
	s := &SuggestionService{
		menu:                menu,
		ratios:              ratios,
		settings:            settings,
		defaultTrayCapacity: model.DefaultOrderSettings().DefaultTrayCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultTrayCapacity overrides the fallback tray capacity used when
// neither the item nor the stored settings define one.
func WithDefaultTrayCapacity(capacity int) SuggestionOption {
	return func(s *SuggestionService) {
		if capacity > 0 {
			s.defaultTrayCapacity = capacity
		}
	}
}

// Suggest resolves the item and current configuration and computes the
// quantity. Unknown items fail; everything else degrades to a minimum
// suggestion of 1 rather than erroring.
func (s *SuggestionService) Suggest(ctx context.Context, cfg model.EventConfig, itemID string, cartedQty int) (int, error) {
	item, err := s.menu.FindByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, ErrItemNotFound
	}
	if !item.Available {
		return 0, ErrItemUnavailable
	}

	table := model.DefaultRatioTable()
	if stored, err := s.ratios.GetActive(ctx); err == nil && stored != nil {
		table = *stored
	}

	capacity := s.defaultTrayCapacity
	if stored, err := s.settings.GetActive(ctx); err == nil && stored != nil && stored.DefaultTrayCapacity > 0 {
		capacity = stored.DefaultTrayCapacity
	}

	qty := SuggestQuantity(cfg, *item, table, capacity)
	qty = saturate(qty, cartedQty)

	metrics.RecordSuggestion("success")
	return qty, nil
}

// SuggestQuantity is the pure quantity computation. Guests at or below
// zero suggest the minimum of 1 outright, whatever the event type or
// hunger level. Per-guest items scale linearly; coverage items divide
// guest demand by serving capacity; items with no applicable ratio
// (by-weight, dips) suggest the minimum. Results always round up and are
// never below 1.
func SuggestQuantity(cfg model.EventConfig, item model.MenuItem, table model.RatioTable, defaultCapacity int) int {
	guests := cfg.EffectiveGuests()
	if guests <= 0 {
		return 1
	}

	ratio, _, ok := table.RatioFor(cfg.EventType, item.Category)
	if !ok || item.Unit == model.UnitWeight {
		return 1
	}

	demand := guests * ratio * table.HungerMultiplier(cfg.Hunger)

	var qty int
	switch {
	case item.PortionedPerGuest():
		qty = int(math.Ceil(demand))
	case item.CoverageBased():
		qty = int(math.Ceil(demand / float64(item.Capacity(defaultCapacity))))
	default:
		qty = 1
	}

	if qty < 1 {
		qty = 1
	}
	return qty
}

// saturate discounts the fresh suggestion by what is already carted for
// the same item, never dropping below 1 so the control stays usable.
func saturate(suggested, carted int) int {
	if carted <= 0 {
		return suggested
	}
	adjusted := suggested - carted
	if adjusted < 1 {
		return 1
	}
	return adjusted
}
