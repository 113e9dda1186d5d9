package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

func TestCompareExpr(t *testing.T) {
	require.Equal(t,
		"(block_number, index) < (?, ?)",
		paginate.CompareExpr([]string{"block_number", "index"}, "<"))

	require.Equal(t,
		"(fee, block_number, index) >= (?, ?, ?)",
		paginate.CompareExpr([]string{"fee", "block_number", "index"}, ">="))

	require.Equal(t,
		"(index) > (?)",
		paginate.CompareExpr([]string{"index"}, ">"))
}

func TestTrim(t *testing.T) {
	rows := []int{1, 2, 3, 4}

	got, more := paginate.Trim(rows, 3)
	require.True(t, more)
	require.Equal(t, []int{1, 2, 3}, got)

	got, more = paginate.Trim(rows, 4)
	require.False(t, more)
	require.Equal(t, rows, got)

	got, more = paginate.Trim([]int{}, 4)
	require.False(t, more)
	require.Empty(t, got)
}
