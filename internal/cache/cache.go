// Package cache provides a TTL-aware LRU map with a fixed capacity.
// Entries past their TTL are reported as expired but kept in place until
// evicted, so a failed refresh never discards the previous value.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type item[V any] struct {
	data     V
	keyPtr   *list.Element
	storedAt time.Time
}

type TTL[K comparable, V any] struct {
	queue    *list.List
	items    map[K]*item[V]
	capacity int
	ttl      time.Duration

	now func() time.Time // swappable for tests

	mx sync.Mutex
}

func NewTTL[K comparable, V any](capacity int, ttl time.Duration) *TTL[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &TTL[K, V]{
		queue:    list.New(),
		items:    map[K]*item[V]{},
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source; tests drive expiry with it.
func (c *TTL[K, V]) WithClock(now func() time.Time) *TTL[K, V] {
	c.now = now
	return c
}

func (c *TTL[K, V]) removeOldest() {
	back := c.queue.Back()
	c.queue.Remove(back)
	delete(c.items, back.Value.(K)) //nolint:forcetypeassert // queue holds K only
}

// Put stores a value with a fresh timestamp, evicting the least recently used
// entry when at capacity.
func (c *TTL[K, V]) Put(k K, value V) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if it, ok := c.items[k]; ok {
		it.data = value
		it.storedAt = c.now()
		c.queue.MoveToFront(it.keyPtr)
		return
	}

	if c.capacity == len(c.items) {
		c.removeOldest()
	}
	c.items[k] = &item[V]{
		data:     value,
		keyPtr:   c.queue.PushFront(k),
		storedAt: c.now(),
	}
}

// Get returns the stored value; expired reports whether its age passed the
// TTL. Expired entries stay readable so callers can fall back to the stale
// value when a refresh fails.
func (c *TTL[K, V]) Get(key K) (value V, expired, ok bool) {
	c.mx.Lock()
	defer c.mx.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false, false
	}

	c.queue.MoveToFront(it.keyPtr)
	return it.data, c.now().Sub(it.storedAt) > c.ttl, true
}

func (c *TTL[K, V]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return len(c.items)
}

func (c *TTL[K, V]) Keys() (keys []K) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for k := range c.items {
		keys = append(keys, k)
	}
	return keys
}
