package paging_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

func uintPtr(v uint64) *uint64 { return &v }
func intPtr(v int) *int        { return &v }
func strPtr(v string) *string  { return &v }

func TestCursor_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 17, 11, 30, 0, 123456789, time.UTC)

	cases := []*paging.Cursor{
		{BlockNumber: uintPtr(19000000), Index: uintPtr(42)},
		{BlockNumber: uintPtr(19000000), TransactionIndex: uintPtr(3), Index: uintPtr(7)},
		{InsertedAt: &ts, Hash: "0x3333333333333333333333333333333333333333333333333333333333333333", Stream: paging.StreamPending},
		{BlockNumber: uintPtr(1), Index: uintPtr(0), Stream: paging.StreamValidated, ItemsCount: intPtr(50)},
		{Fee: strPtr("21000000000000"), BlockNumber: uintPtr(100), Index: uintPtr(1)},
		{BlockNumber: uintPtr(555), Index: uintPtr(12), IndexInBatch: intPtr(50)},
		{TokenContract: addr.MustFromString("0x9c2e93815b23ab13f98bf42d92b38299571bf049"), TokenID: strPtr("123456789012345678901234567890")},
		{Value: strPtr("1000000000000000000"), ID: uintPtr(77)},
	}

	for _, c := range cases {
		got, err := paging.Decode(c.Encode())
		require.Nil(t, err)
		require.Equal(t, c, got)
	}
}

func TestCursor_MarshalCarriesPageToken(t *testing.T) {
	c := &paging.Cursor{
		BlockNumber: uintPtr(19000100),
		Index:       uintPtr(7),
		Stream:      paging.StreamValidated,
	}

	raw, err := json.Marshal(c)
	require.Nil(t, err)

	var fields map[string]interface{}
	require.Nil(t, json.Unmarshal(raw, &fields))

	// flat legacy fields and the compact token side by side
	require.Equal(t, float64(19000100), fields["block_number"])
	token, ok := fields["page_token"].(string)
	require.True(t, ok)
	require.Equal(t, c.Encode(), token)

	got, err := paging.Decode(token)
	require.Nil(t, err)
	require.Equal(t, c, got)
}

func TestCursor_DecodeMalformed(t *testing.T) {
	for _, token := range []string{"%%%", "bm90LWpzb24", "e30h"} {
		_, err := paging.Decode(token)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, core.ErrInvalidCursor))
	}
}

func TestCursor_DecodeQuery_Legacy(t *testing.T) {
	t.Run("validated tiebreak", func(t *testing.T) {
		q := url.Values{}
		q.Set("block_number", "19000000")
		q.Set("index", "42")

		c, err := paging.DecodeQuery(q, core.EntityTransactions)
		require.Nil(t, err)
		require.Equal(t, &paging.Cursor{BlockNumber: uintPtr(19000000), Index: uintPtr(42)}, c)
	})

	t.Run("pending tiebreak infers stream", func(t *testing.T) {
		q := url.Values{}
		q.Set("inserted_at", "2024-05-17T11:30:00.123456789Z")
		q.Set("hash", "0xabcd")

		c, err := paging.DecodeQuery(q, core.EntityTransactions)
		require.Nil(t, err)
		require.Equal(t, paging.StreamPending, c.Stream)
		require.NotNil(t, c.InsertedAt)
		require.Equal(t, "0xabcd", c.Hash)
	})

	t.Run("legacy equals compact", func(t *testing.T) {
		want := &paging.Cursor{BlockNumber: uintPtr(555), Index: uintPtr(12), IndexInBatch: intPtr(50)}

		q := url.Values{}
		q.Set("block_number", "555")
		q.Set("index", "12")
		q.Set("index_in_batch", "50")
		legacy, err := paging.DecodeQuery(q, core.EntityTokenTransfers)
		require.Nil(t, err)

		q = url.Values{}
		q.Set("page_token", want.Encode())
		compact, err := paging.DecodeQuery(q, core.EntityTokenTransfers)
		require.Nil(t, err)

		require.Equal(t, want, legacy)
		require.Equal(t, want, compact)
	})

	t.Run("absent params give nil cursor", func(t *testing.T) {
		c, err := paging.DecodeQuery(url.Values{}, core.EntityLogs)
		require.Nil(t, err)
		require.Nil(t, c)
	})

	t.Run("malformed numeric", func(t *testing.T) {
		q := url.Values{}
		q.Set("block_number", "not-a-number")
		_, err := paging.DecodeQuery(q, core.EntityLogs)
		require.True(t, errors.Is(err, core.ErrInvalidCursor))
	})

	t.Run("malformed stream marker", func(t *testing.T) {
		q := url.Values{}
		q.Set("block_number", "1")
		q.Set("index", "1")
		q.Set("stream", "limbo")
		_, err := paging.DecodeQuery(q, core.EntityTransactions)
		require.True(t, errors.Is(err, core.ErrInvalidCursor))
	})
}
