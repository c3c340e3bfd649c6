package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/geo"
)

// memoryCartStore is a concurrency-safe in-memory cart store for exercising
// the asynchronous resolution path.
type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string]model.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]model.Cart)}
}

func (s *memoryCartStore) FindBySession(_ context.Context, sessionID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := cart
	return &copied, nil
}

func (s *memoryCartStore) Save(_ context.Context, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.SessionID] = *cart
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// scriptedResolver answers each query from a fixed table, optionally
// delaying to simulate a slow geocoder.
type scriptedResolver struct {
	mu      sync.Mutex
	delay   time.Duration
	results map[string]*geo.Resolution
	errs    map[string]error
	calls   []string
}

func (r *scriptedResolver) Resolve(_ context.Context, query string) (*geo.Resolution, error) {
	r.mu.Lock()
	r.calls = append(r.calls, query)
	delay := r.delay
	res := r.results[query]
	err := r.errs[query]
	r.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, geo.ErrNoMatch
	}
	return res, nil
}

func (r *scriptedResolver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestDeliveryService_ResolvesAfterDebounce(t *testing.T) {
	ctx := context.Background()
	store := newMemoryCartStore()
	resolver := &scriptedResolver{
		results: map[string]*geo.Resolution{
			"12 Herzl St, Haifa": {DisplayName: "Herzl 12, Haifa, Israel", DistanceKm: 12},
		},
	}

	svc := NewDeliveryService(store, resolver, WithDebounce(20*time.Millisecond))
	defer svc.Stop()

	cart, err := svc.SubmitAddress(ctx, "s1", "12 Herzl St, Haifa")
	require.NoError(t, err)
	assert.False(t, cart.Customer.DistanceResolved)

	waitFor(t, time.Second, func() bool {
		c, _ := store.FindBySession(ctx, "s1")
		return c != nil && c.Customer.DistanceResolved
	})

	stored, err := store.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Herzl 12, Haifa, Israel", stored.Customer.ResolvedName)
	assert.InDelta(t, 12.0, stored.Customer.DistanceKm, 1e-9)
	assert.True(t, stored.Customer.DistanceLocked)
	assert.False(t, svc.Resolving("s1"))
}

func TestDeliveryService_DebounceCollapsesKeystrokes(t *testing.T) {
	ctx := context.Background()
	store := newMemoryCartStore()
	resolver := &scriptedResolver{
		results: map[string]*geo.Resolution{
			"12 Herzl St, Haifa": {DisplayName: "Herzl 12, Haifa, Israel", DistanceKm: 12},
		},
	}

	svc := NewDeliveryService(store, resolver, WithDebounce(50*time.Millisecond))
	defer svc.Stop()

	// Rapid retypes inside the debounce window: only the last fires.
	for _, text := range []string{"12", "12 Herzl", "12 Herzl St", "12 Herzl St, Haifa"} {
		_, err := svc.SubmitAddress(ctx, "s1", text)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool {
		c, _ := store.FindBySession(ctx, "s1")
		return c != nil && c.Customer.DistanceResolved
	})

	assert.Equal(t, 1, resolver.callCount())
}

func TestDeliveryService_StaleResolutionDropped(t *testing.T) {
	ctx := context.Background()
	store := newMemoryCartStore()
	resolver := &scriptedResolver{
		delay: 30 * time.Millisecond,
		results: map[string]*geo.Resolution{
			"old address": {DisplayName: "Old Place", DistanceKm: 50},
			"new address": {DisplayName: "New Place", DistanceKm: 8},
		},
	}

	svc := NewDeliveryService(store, resolver, WithDebounce(10*time.Millisecond))
	defer svc.Stop()

	_, err := svc.SubmitAddress(ctx, "s1", "old address")
	require.NoError(t, err)

	// Let the first resolution start, then supersede it while in flight.
	time.Sleep(20 * time.Millisecond)
	_, err = svc.SubmitAddress(ctx, "s1", "new address")
	require.NoError(t, err)

	waitFor(t, time.Second, func() bool {
		c, _ := store.FindBySession(ctx, "s1")
		return c != nil && c.Customer.DistanceResolved
	})

	stored, err := store.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "New Place", stored.Customer.ResolvedName)
	assert.InDelta(t, 8.0, stored.Customer.DistanceKm, 1e-9)
}

func TestDeliveryService_NoMatchLeavesUnresolved(t *testing.T) {
	ctx := context.Background()
	store := newMemoryCartStore()
	resolver := &scriptedResolver{results: map[string]*geo.Resolution{}}

	svc := NewDeliveryService(store, resolver, WithDebounce(10*time.Millisecond))
	defer svc.Stop()

	_, err := svc.SubmitAddress(ctx, "s1", "gibberish input")
	require.NoError(t, err)

	waitFor(t, time.Second, func() bool {
		return resolver.callCount() == 1 && !svc.Resolving("s1")
	})

	stored, err := store.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, stored.Customer.DistanceResolved)
	assert.False(t, stored.Customer.DistanceLocked)
}

func TestDeliveryService_ManualDistance(t *testing.T) {
	ctx := context.Background()
	store := newMemoryCartStore()
	resolver := &scriptedResolver{
		results: map[string]*geo.Resolution{
			"12 Herzl St, Haifa": {DisplayName: "Herzl 12, Haifa, Israel", DistanceKm: 12},
		},
	}

	svc := NewDeliveryService(store, resolver, WithDebounce(10*time.Millisecond))
	defer svc.Stop()

	t.Run("allowed before any resolution", func(t *testing.T) {
		cart, err := svc.SetManualDistance(ctx, "manual-session", 14)
		require.NoError(t, err)
		assert.InDelta(t, 14.0, cart.Customer.DistanceKm, 1e-9)
		assert.False(t, cart.Customer.DistanceResolved)
	})

	t.Run("rejected while locked, allowed after address edit", func(t *testing.T) {
		_, err := svc.SubmitAddress(ctx, "s1", "12 Herzl St, Haifa")
		require.NoError(t, err)

		waitFor(t, time.Second, func() bool {
			c, _ := store.FindBySession(ctx, "s1")
			return c != nil && c.Customer.DistanceLocked
		})

		_, err = svc.SetManualDistance(ctx, "s1", 7)
		assert.ErrorIs(t, err, ErrDistanceLocked)

		// Editing the address unlocks the field.
		_, err = svc.SubmitAddress(ctx, "s1", "somewhere else entirely")
		require.NoError(t, err)

		cart, err := svc.SetManualDistance(ctx, "s1", 7)
		require.NoError(t, err)
		assert.InDelta(t, 7.0, cart.Customer.DistanceKm, 1e-9)
	})
}
