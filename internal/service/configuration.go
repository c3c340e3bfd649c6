package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// ConfigurationService manages the editable ordering configuration: the
// ratio table and the order settings. Reads fall back to compiled-in
// defaults when nothing is stored or the store is unreachable, so the
// storefront keeps working without a database row.
type ConfigurationService interface {
	Ratios(ctx context.Context) (model.RatioTable, error)
	UpdateEventRatios(ctx context.Context, event model.EventType, ratios model.CategoryRatios, updatedBy string) (model.RatioTable, error)
	UpdateHunger(ctx context.Context, hunger model.HungerMultipliers, updatedBy string) (model.RatioTable, error)

	Settings(ctx context.Context) (model.OrderSettings, error)
	UpdateSettings(ctx context.Context, settings model.OrderSettings, updatedBy string) (model.OrderSettings, error)
}

// ConfigurationServiceImpl implements ConfigurationService.
type ConfigurationServiceImpl struct {
	ratios   repository.RatiosRepositoryInterface
	settings repository.SettingsRepositoryInterface
}

// NewConfigurationService creates a new configuration service.
func NewConfigurationService(
	ratios repository.RatiosRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
) ConfigurationService {
	return &ConfigurationServiceImpl{ratios: ratios, settings: settings}
}

// Ratios returns the active ratio table, or the defaults when none is
// stored.
func (s *ConfigurationServiceImpl) Ratios(ctx context.Context) (model.RatioTable, error) {
	stored, err := s.ratios.GetActive(ctx)
	if err != nil {
		return model.RatioTable{}, err
	}
	if stored == nil {
		return model.DefaultRatioTable(), nil
	}
	return *stored, nil
}

// UpdateEventRatios replaces the ratio row for one event type and returns
// the updated table.
func (s *ConfigurationServiceImpl) UpdateEventRatios(ctx context.Context, event model.EventType, ratios model.CategoryRatios, updatedBy string) (model.RatioTable, error) {
	table, err := s.Ratios(ctx)
	if err != nil {
		return model.RatioTable{}, err
	}
	if _, ok := table.Events[event]; !ok {
		return model.RatioTable{}, ErrUnknownEventType
	}

	table.Events[event] = ratios
	table.UpdatedAt = time.Now()
	table.UpdatedBy = updatedBy

	if err := s.ratios.Save(ctx, &table); err != nil {
		return model.RatioTable{}, err
	}

	log.Info().Str("event_type", string(event)).Str("updated_by", updatedBy).Msg("ratio table updated")
	return table, nil
}

// UpdateHunger replaces the hunger multipliers and returns the updated
// table.
func (s *ConfigurationServiceImpl) UpdateHunger(ctx context.Context, hunger model.HungerMultipliers, updatedBy string) (model.RatioTable, error) {
	table, err := s.Ratios(ctx)
	if err != nil {
		return model.RatioTable{}, err
	}

	table.Hunger = hunger
	table.UpdatedAt = time.Now()
	table.UpdatedBy = updatedBy

	if err := s.ratios.Save(ctx, &table); err != nil {
		return model.RatioTable{}, err
	}

	log.Info().Str("updated_by", updatedBy).Msg("hunger multipliers updated")
	return table, nil
}

// Settings returns the active order settings, or the defaults when none
// are stored.
func (s *ConfigurationServiceImpl) Settings(ctx context.Context) (model.OrderSettings, error) {
	stored, err := s.settings.GetActive(ctx)
	if err != nil {
		return model.OrderSettings{}, err
	}
	if stored == nil {
		return model.DefaultOrderSettings(), nil
	}
	return *stored, nil
}

// UpdateSettings replaces the order settings.
func (s *ConfigurationServiceImpl) UpdateSettings(ctx context.Context, settings model.OrderSettings, updatedBy string) (model.OrderSettings, error) {
	settings.UpdatedAt = time.Now()
	settings.UpdatedBy = updatedBy

	if err := s.settings.Save(ctx, &settings); err != nil {
		return model.OrderSettings{}, err
	}

	log.Info().
		Float64("min_order_amount", settings.MinOrderAmount).
		Float64("free_delivery_threshold", settings.FreeDeliveryThreshold).
		Float64("service_radius_km", settings.ServiceRadiusKm).
		Str("updated_by", updatedBy).
		Msg("order settings updated")
	return settings, nil
}
