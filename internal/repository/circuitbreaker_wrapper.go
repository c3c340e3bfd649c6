package repository

import (
	"context"
	"errors"

	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/domain/model"
)

// RatiosRepositoryWithCircuitBreaker wraps RatiosRepository with circuit
// breaker protection. When the circuit is open, reads return nil so
// callers fall back to the compiled-in defaults instead of failing the
// storefront.
type RatiosRepositoryWithCircuitBreaker struct {
	repo           *RatiosRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRatiosRepositoryWithCircuitBreaker creates the wrapper.
func NewRatiosRepositoryWithCircuitBreaker(repo *RatiosRepository, cb *circuitbreaker.CircuitBreaker) *RatiosRepositoryWithCircuitBreaker {
	return &RatiosRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns the active ratio table with breaker protection.
func (r *RatiosRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*model.RatioTable, error) {
	var result *model.RatioTable
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Save stores the ratio table with breaker protection.
func (r *RatiosRepositoryWithCircuitBreaker) Save(ctx context.Context, table *model.RatioTable) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, table)
	})
}

// SettingsRepositoryWithCircuitBreaker wraps SettingsRepository with
// circuit breaker protection.
type SettingsRepositoryWithCircuitBreaker struct {
	repo           *SettingsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSettingsRepositoryWithCircuitBreaker creates the wrapper.
func NewSettingsRepositoryWithCircuitBreaker(repo *SettingsRepository, cb *circuitbreaker.CircuitBreaker) *SettingsRepositoryWithCircuitBreaker {
	return &SettingsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// GetActive returns the active settings with breaker protection. An open
// circuit yields nil so callers fall back to defaults.
func (r *SettingsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*model.OrderSettings, error) {
	var result *model.OrderSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Save stores the settings with breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) Save(ctx context.Context, settings *model.OrderSettings) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, settings)
	})
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit
// breaker protection. Log writes behind an open circuit are dropped
// silently: losing audit entries must never take down request handling.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates the wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create inserts one entry with breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany inserts entries with breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query returns matching entries with breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	var result []model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the matching entry count with breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}
