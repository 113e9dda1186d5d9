package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/internal/cache"
)

func TestTTL_PutGet(t *testing.T) {
	c := cache.NewTTL[string, int](4, time.Minute)

	c.Put("a", 1)
	v, expired, ok := c.Get("a")
	require.True(t, ok)
	require.False(t, expired)
	require.Equal(t, 1, v)

	_, _, ok = c.Get("missing")
	require.False(t, ok)
}

func TestTTL_Expiry(t *testing.T) {
	now := time.Now()
	c := cache.NewTTL[string, int](4, time.Minute).WithClock(func() time.Time { return now })

	c.Put("a", 1)

	now = now.Add(59 * time.Second)
	_, expired, ok := c.Get("a")
	require.True(t, ok)
	require.False(t, expired)

	now = now.Add(2 * time.Second)
	v, expired, ok := c.Get("a")
	require.True(t, ok)
	require.True(t, expired) // stale entry stays readable
	require.Equal(t, 1, v)

	c.Put("a", 2)
	v, expired, ok = c.Get("a")
	require.True(t, ok)
	require.False(t, expired)
	require.Equal(t, 2, v)
}

func TestTTL_NonPositiveCapacity(t *testing.T) {
	c := cache.NewTTL[string, int](0, time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)

	v, _, ok := c.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())
}

func TestTTL_EvictsOldest(t *testing.T) {
	c := cache.NewTTL[int, int](2, time.Minute)

	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(3, 3)

	_, _, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}
