package counters_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/internal/counters"
)

func fixed(v uint64, calls *int32) counters.ComputeFunc {
	return func(context.Context) (uint64, error) {
		atomic.AddInt32(calls, 1)
		return v, nil
	}
}

// two reads inside the TTL window return the same value even if the
// underlying data changed; a read past expiry picks up the new data
func TestCache_TTLWindow(t *testing.T) {
	now := time.Now()
	c := counters.New(16, time.Minute).WithClock(func() time.Time { return now })

	ctx := context.Background()
	var calls int32

	v, err := c.Get(ctx, "0xabc", "transactions_count", fixed(10, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 10, v)

	// data changed underneath, still within TTL: cached value wins
	v, err = c.Get(ctx, "0xabc", "transactions_count", fixed(11, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 10, v)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))

	now = now.Add(time.Minute + time.Second)

	v, err = c.Get(ctx, "0xabc", "transactions_count", fixed(11, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 11, v)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCache_KeysAreIndependent(t *testing.T) {
	c := counters.New(16, time.Minute)
	ctx := context.Background()
	var calls int32

	v, err := c.Get(ctx, "0xabc", "transactions_count", fixed(1, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 1, v)

	v, err = c.Get(ctx, "0xabc", "token_transfers_count", fixed(2, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 2, v)

	v, err = c.Get(ctx, "0xdef", "transactions_count", fixed(3, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 3, v)

	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

// concurrent cold reads of one key collapse into a single recomputation
func TestCache_SingleFlight(t *testing.T) {
	c := counters.New(16, time.Minute)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	compute := func(context.Context) (uint64, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const readers = 16
	var wg sync.WaitGroup
	results := make([]uint64, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Get(ctx, "0xabc", "gas_usage_count", compute)
		}(i)
	}

	time.Sleep(50 * time.Millisecond) // let readers pile onto the flight
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for i := range results {
		require.Nil(t, errs[i])
		require.EqualValues(t, 42, results[i])
	}
}

// a failed recomputation must not poison the prior entry
func TestCache_FailureKeepsStaleEntry(t *testing.T) {
	now := time.Now()
	c := counters.New(16, time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	var calls int32
	v, err := c.Get(ctx, "0xabc", "validations_count", fixed(7, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 7, v)

	now = now.Add(2 * time.Minute)

	boom := errors.New("clickhouse is down")
	_, err = c.Get(ctx, "0xabc", "validations_count", func(context.Context) (uint64, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	// entry survived the failure and the next read retries the compute
	v, err = c.Get(ctx, "0xabc", "validations_count", fixed(8, &calls))
	require.Nil(t, err)
	require.EqualValues(t, 8, v)
}
