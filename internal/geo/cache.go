package geo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/catering-service/internal/metrics"
)

// CachedResolver memoizes successful resolutions by normalized query.
// Address text repeats heavily while a customer types and corrects, and
// geocoding quotas are tight, so even a small TTL cache removes most
// upstream calls. Failures are never cached.
type CachedResolver struct {
	inner    Resolver
	ttl      time.Duration
	capacity int

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	resolution Resolution
	expiresAt  time.Time
}

// NewCachedResolver wraps a resolver with a TTL cache.
func NewCachedResolver(inner Resolver, capacity int, ttl time.Duration) *CachedResolver {
	if capacity < 1 {
		capacity = 256
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedResolver{
		inner:    inner,
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]cacheEntry),
	}
}

// Resolve returns a cached resolution when fresh, otherwise delegates.
func (c *CachedResolver) Resolve(ctx context.Context, query string) (*Resolution, error) {
	key := normalizeQuery(query)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && time.Now().Before(entry.expiresAt) {
		c.mu.Unlock()
		metrics.RecordCacheOperation("geocode", "hit")
		res := entry.resolution
		return &res, nil
	}
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	metrics.RecordCacheOperation("geocode", "miss")

	resolution, err := c.inner.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.capacity {
		c.evictExpiredLocked()
		// Still full after dropping expired entries: drop one arbitrary
		// entry rather than growing without bound.
		if len(c.entries) >= c.capacity {
			for k := range c.entries {
				delete(c.entries, k)
				break
			}
		}
	}
	c.entries[key] = cacheEntry{resolution: *resolution, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return resolution, nil
}

func (c *CachedResolver) evictExpiredLocked() {
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// normalizeQuery collapses case and surrounding whitespace so trivial
// retypes hit the cache.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
