package paging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

func TestResolve_Defaults(t *testing.T) {
	d := paging.Resolve(core.EntityTransactions, "", "")

	require.Equal(t, "block_number", d.Sort)
	require.Equal(t, paging.Desc, d.Order)
	require.Equal(t, []string{"block_number", "index"}, d.Columns)
	require.True(t, d.Split)
	require.Equal(t, []string{"inserted_at", "hash"}, d.PendingColumns)
	require.Equal(t, "<", d.CmpOp())
}

func TestResolve_SecondarySortKeepsDefaultTiebreak(t *testing.T) {
	d := paging.Resolve(core.EntityTransactions, "fee", "asc")

	require.Equal(t, "fee", d.Sort)
	require.Equal(t, paging.Asc, d.Order)
	require.Equal(t, []string{"fee", "block_number", "index"}, d.Columns)
	require.Equal(t, ">", d.CmpOp())
}

// wrong sort/order params are ignored, never rejected
func TestResolve_SilentFallback(t *testing.T) {
	def := paging.Resolve(core.EntityTokenTransfers, "", "")

	for _, c := range []struct{ sort, order string }{
		{"foo", "bar"},
		{"; drop table", "DESCENDING"},
		{"block_number", "sideways"},
		{"fee", ""}, // fee is not a token-transfer sort
	} {
		d := paging.Resolve(core.EntityTokenTransfers, c.sort, c.order)
		require.Equal(t, def.Columns, d.Columns)
		require.Equal(t, def.Order, d.Order)
	}
}

func TestResolve_OrderNormalization(t *testing.T) {
	d := paging.Resolve(core.EntityWithdrawals, "index", "ASC")
	require.Equal(t, paging.Asc, d.Order)

	d = paging.Resolve(core.EntityWithdrawals, "index", " desc ")
	require.Equal(t, paging.Desc, d.Order)
}

func TestResolve_UniqueTiebreakEverywhere(t *testing.T) {
	for _, e := range []core.Entity{
		core.EntityTransactions, core.EntityTokenTransfers,
		core.EntityInternalTransactions, core.EntityLogs, core.EntityBlocks,
		core.EntityNFTInstances, core.EntityNFTCollections,
		core.EntityTokenBalances, core.EntityWithdrawals,
	} {
		d := paging.Resolve(e, "", "")
		require.NotEmpty(t, d.Columns, "entity %s", e)
	}
}

func TestDescriptor_SupportsFilter(t *testing.T) {
	d := paging.Resolve(core.EntityTokenTransfers, "", "")
	require.True(t, d.SupportsFilter("type"))
	require.True(t, d.SupportsFilter("token"))
	require.False(t, d.SupportsFilter("topic"))
}
