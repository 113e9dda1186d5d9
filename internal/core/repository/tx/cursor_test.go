package tx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/extra/bunbig"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

func TestNextTxCursor_SecondarySortValue(t *testing.T) {
	bn, idx := uint64(19000100), uint32(7)

	row := func(fee *bunbig.Int) []*core.Transaction {
		return []*core.Transaction{{
			Hash:        []byte{0xde, 0xad},
			BlockNumber: &bn,
			Index:       &idx,
			Fee:         fee,
			InsertedAt:  time.Now(),
		}}
	}

	t.Run("fee carried", func(t *testing.T) {
		d := paging.Resolve(core.EntityTransactions, "fee", "desc")

		c := nextTxCursor(&d, row(bunbig.FromInt64(21000)), nil)
		require.NotNil(t, c)
		require.NotNil(t, c.Fee)
		assert.Equal(t, "21000", *c.Fee)
		assert.Equal(t, paging.StreamValidated, c.Stream)
	})

	t.Run("missing fee omitted", func(t *testing.T) {
		d := paging.Resolve(core.EntityTransactions, "fee", "desc")

		c := nextTxCursor(&d, row(nil), nil)
		require.NotNil(t, c)
		assert.Nil(t, c.Fee)
		assert.Equal(t, bn, *c.BlockNumber)
	})
}
