package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/geo"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
)

// DefaultDebounce is the quiet period after the last address keystroke
// before a resolution fires.
const DefaultDebounce = 800 * time.Millisecond

// DeliveryService owns the session's delivery state: address submissions,
// debounced distance resolution, and manual distance overrides.
//
// Each address submission restarts the session's debounce timer. Every
// submission gets a sequence number; a resolution only applies if it is
// still the latest for the session when it completes. Stale results are
// dropped, so out-of-order resolver responses can never overwrite a newer
// address.
type DeliveryService interface {
	// SubmitAddress records the address text and schedules a resolution.
	SubmitAddress(ctx context.Context, sessionID, address string) (*model.Cart, error)
	// SetManualDistance records a hand-entered distance. Returns
	// ErrDistanceLocked while a resolution holds the distance lock.
	SetManualDistance(ctx context.Context, sessionID string, distanceKm float64) (*model.Cart, error)
	// Resolving reports whether a resolution is pending or in flight for
	// the session.
	Resolving(sessionID string) bool
	// Stop cancels all pending timers. In-flight resolutions finish but
	// new ones are not scheduled.
	Stop()
}

// DeliveryServiceImpl implements DeliveryService with one debounce timer
// per session.
type DeliveryServiceImpl struct {
	carts    repository.CartRepositoryInterface
	resolver geo.Resolver
	debounce time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	pending map[string]*pendingResolution
	stopped bool
}

// pendingResolution tracks the latest submission for one session.
type pendingResolution struct {
	seq   uint64
	timer *time.Timer
}

// DeliveryOption configures a DeliveryServiceImpl.
type DeliveryOption func(*DeliveryServiceImpl)

// WithDebounce overrides the debounce interval. Tests use small values.
func WithDebounce(d time.Duration) DeliveryOption {
	return func(s *DeliveryServiceImpl) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithResolveTimeout bounds each resolver call.
func WithResolveTimeout(d time.Duration) DeliveryOption {
	return func(s *DeliveryServiceImpl) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewDeliveryService creates a new delivery service.
func NewDeliveryService(carts repository.CartRepositoryInterface, resolver geo.Resolver, opts ...DeliveryOption) *DeliveryServiceImpl {
	s := &DeliveryServiceImpl{
		carts:    carts,
		resolver: resolver,
		debounce: DefaultDebounce,
		timeout:  10 * time.Second,
		pending:  make(map[string]*pendingResolution),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitAddress records the address text on the cart and restarts the
// session's debounce timer. Editing the address unlocks the distance
// field immediately; the resolution re-locks it when it lands.
func (s *DeliveryServiceImpl) SubmitAddress(ctx context.Context, sessionID, address string) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = model.NewCart(sessionID)
	}

	cart.Customer.SetAddress(address)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	if address != "" && !cart.Customer.DistanceResolved {
		s.schedule(sessionID, address)
	}
	return cart, nil
}

// SetManualDistance records a hand-entered distance unless a resolution
// holds the lock.
func (s *DeliveryServiceImpl) SetManualDistance(ctx context.Context, sessionID string, distanceKm float64) (*model.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = model.NewCart(sessionID)
	}

	if !cart.Customer.SetManualDistance(distanceKm) {
		return nil, ErrDistanceLocked
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Resolving reports whether a resolution is pending or in flight.
func (s *DeliveryServiceImpl) Resolving(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[sessionID]
	return ok
}

// Stop cancels all pending timers.
func (s *DeliveryServiceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for sessionID, p := range s.pending {
		if p.timer != nil {
			p.timer.Stop()
		}
		delete(s.pending, sessionID)
	}
}

// schedule restarts the debounce timer for the session and bumps its
// sequence number so any earlier in-flight resolution becomes stale.
func (s *DeliveryServiceImpl) schedule(sessionID, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	p, ok := s.pending[sessionID]
	if !ok {
		p = &pendingResolution{}
		s.pending[sessionID] = p
	}
	if p.timer != nil {
		p.timer.Stop()
	}

	p.seq++
	seq := p.seq
	p.timer = time.AfterFunc(s.debounce, func() {
		s.resolve(sessionID, address, seq)
	})
}

// resolve runs the geocoding call and applies the result if it is still
// the latest submission for the session.
func (s *DeliveryServiceImpl) resolve(sessionID, address string, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	resolution, err := s.resolver.Resolve(ctx, address)

	if !s.finish(sessionID, seq) {
		// A newer submission superseded this one while it was in flight.
		metrics.RecordDistanceResolution(time.Since(start), "stale")
		return
	}

	switch {
	case errors.Is(err, geo.ErrNoMatch):
		metrics.RecordDistanceResolution(time.Since(start), "no_match")
		log.Debug().Str("session_id", sessionID).Msg("address resolution found no match")
		return
	case err != nil:
		metrics.RecordDistanceResolution(time.Since(start), "error")
		log.Warn().Err(err).Str("session_id", sessionID).Msg("address resolution failed")
		return
	}

	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil || cart == nil {
		metrics.RecordDistanceResolution(time.Since(start), "error")
		return
	}
	// The address may have changed between scheduling and completion
	// without a new timer firing yet; never overwrite newer input.
	if cart.Customer.AddressText != address {
		metrics.RecordDistanceResolution(time.Since(start), "stale")
		return
	}

	cart.Customer.ApplyResolution(resolution.DisplayName, resolution.DistanceKm)
	if err := s.carts.Save(ctx, cart); err != nil {
		metrics.RecordDistanceResolution(time.Since(start), "error")
		log.Warn().Err(err).Str("session_id", sessionID).Msg("persist resolved distance failed")
		return
	}

	metrics.RecordDistanceResolution(time.Since(start), "success")
	log.Debug().
		Str("session_id", sessionID).
		Float64("distance_km", resolution.DistanceKm).
		Msg("address resolved")
}

// finish removes the pending entry if seq is still current. Returns false
// when a newer submission owns the session.
func (s *DeliveryServiceImpl) finish(sessionID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[sessionID]
	if !ok || p.seq != seq {
		return false
	}
	delete(s.pending, sessionID)
	return true
}
