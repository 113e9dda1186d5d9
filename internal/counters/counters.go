// Package counters serves per-address aggregate counters through a
// read-through TTL cache. Counts are recomputed synchronously on a miss or
// past-TTL read; concurrent misses on the same (subject, counter) collapse
// into a single recomputation shared by all waiters.
package counters

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/evmscan/evmscan/internal/cache"
)

// ComputeFunc produces a fresh counter value; callers pass the store-backed
// aggregate query here.
type ComputeFunc func(ctx context.Context) (uint64, error)

type entry struct {
	value      uint64
	computedAt time.Time
}

type Cache struct {
	entries *cache.TTL[string, entry]
	flights singleflight.Group

	ttl time.Duration
	now func() time.Time
}

func New(capacity int, ttl time.Duration) *Cache {
	return &Cache{
		entries: cache.NewTTL[string, entry](capacity, ttl),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source for both the cache and its entries;
// tests drive TTL expiry with it.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	c.entries.WithClock(now)
	return c
}

// Get returns the cached counter value, recomputing it first when absent or
// older than the TTL. A failed recomputation leaves the previous entry in
// place untouched; the failure is surfaced to its own callers and retried on
// the next read past TTL.
func (c *Cache) Get(ctx context.Context, subject, counter string, compute ComputeFunc) (uint64, error) {
	key := subject + "/" + counter

	if e, expired, ok := c.entries.Get(key); ok && !expired {
		return e.value, nil
	}

	v, err, _ := c.flights.Do(key, func() (interface{}, error) {
		// a just-finished flight may have refreshed the entry already
		if e, expired, ok := c.entries.Get(key); ok && !expired {
			return e.value, nil
		}

		// the recomputation outlives an abandoned request and still
		// populates the cache for subsequent callers
		value, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.entries.Put(key, entry{value: value, computedAt: c.now()})
		return value, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(uint64), nil //nolint:forcetypeassert // flight returns uint64 only
}
