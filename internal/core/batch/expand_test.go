package batch_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/batch"
	"github.com/evmscan/evmscan/internal/core/rndm"
)

// a batch row with the same id repeated 51 times squashes into a single line
// whose amount is the sum of all repeats
func TestSquash_RepeatedID(t *testing.T) {
	var ids, amounts []string
	for i := 0; i <= 50; i++ {
		ids = append(ids, "3")
		amounts = append(amounts, fmt.Sprintf("%d", i))
	}

	gotIDs, gotSums, err := batch.Squash(ids, amounts)
	require.Nil(t, err)
	require.Len(t, gotIDs, 1)
	require.Equal(t, big.NewInt(3), gotIDs[0])
	require.Equal(t, big.NewInt(1275), gotSums[0]) // sum 0..50
}

func TestSquash_PreservesStoredOrder(t *testing.T) {
	ids, sums, err := batch.Squash(
		[]string{"7", "2", "7", "9", "2"},
		[]string{"1", "10", "100", "1000", "10000"},
	)
	require.Nil(t, err)
	require.Equal(t, []*big.Int{big.NewInt(7), big.NewInt(2), big.NewInt(9)}, ids)
	require.Equal(t, []*big.Int{big.NewInt(101), big.NewInt(10010), big.NewInt(1000)}, sums)
}

func TestSquash_Malformed(t *testing.T) {
	_, _, err := batch.Squash([]string{"x"}, []string{"1"})
	require.NotNil(t, err)

	_, _, err = batch.Squash([]string{"1"}, []string{"0x1"})
	require.NotNil(t, err)
}

func TestLines_SingleAssetRow(t *testing.T) {
	row := rndm.TokenTransfer(core.ERC20)

	lines, err := batch.Lines(row)
	require.Nil(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, row, lines[0].Row)
	require.Equal(t, 0, lines[0].IndexInBatch)
	require.Equal(t, row.Amount.ToMathBig(), lines[0].Amount)
}

func batchRow(n uint64, ids ...int64) *core.TokenTransfer {
	row := rndm.TokenTransfer(core.ERC1155)
	row.BlockNumber = n
	row.TokenID, row.Amount = nil, nil
	row.TokenIDs, row.Amounts = nil, nil
	for _, id := range ids {
		row.TokenIDs = append(row.TokenIDs, fmt.Sprintf("%d", id))
		row.Amounts = append(row.Amounts, "1")
	}
	return row
}

// a 51-id batch row at page size 50 splits: page 1 serves lines 0..49 and the
// cursor resumes at offset 50 inside the same row
func TestExpand_MidRowSplit(t *testing.T) {
	var ids []int64
	for i := int64(0); i < 51; i++ {
		ids = append(ids, 100+i)
	}
	row := batchRow(10, ids...)

	page, err := batch.Expand([]*core.TokenTransfer{row}, 0, 50)
	require.Nil(t, err)
	require.Len(t, page.Lines, 50)
	require.True(t, page.HasMore)
	require.Equal(t, row, page.LastRow)
	require.NotNil(t, page.NextIndexInBatch)
	require.Equal(t, 50, *page.NextIndexInBatch)
	require.Equal(t, big.NewInt(100), page.Lines[0].TokenID)
	require.Equal(t, big.NewInt(149), page.Lines[49].TokenID)

	// page 2 resumes mid-row and exhausts the data
	page, err = batch.Expand([]*core.TokenTransfer{row}, *page.NextIndexInBatch, 50)
	require.Nil(t, err)
	require.Len(t, page.Lines, 1)
	require.Equal(t, big.NewInt(150), page.Lines[0].TokenID)
	require.Equal(t, 50, page.Lines[0].IndexInBatch)
	require.False(t, page.HasMore)
	require.Nil(t, page.NextIndexInBatch)
}

func TestExpand_RowBoundaryCut(t *testing.T) {
	rows := []*core.TokenTransfer{
		batchRow(20, 1, 2, 3),
		batchRow(19, 4, 5),
	}

	page, err := batch.Expand(rows, 0, 3)
	require.Nil(t, err)
	require.Len(t, page.Lines, 3)
	require.True(t, page.HasMore)
	require.Equal(t, rows[0], page.LastRow)
	require.Nil(t, page.NextIndexInBatch) // cut fell exactly on the row boundary
}

func TestExpand_PageSizeCountsLines(t *testing.T) {
	rows := []*core.TokenTransfer{
		batchRow(20, 1, 2),
		batchRow(19, 3, 4),
		batchRow(18, 5),
	}

	page, err := batch.Expand(rows, 0, 3)
	require.Nil(t, err)
	require.Len(t, page.Lines, 3)
	require.True(t, page.HasMore)
	require.Equal(t, rows[1], page.LastRow)
	require.NotNil(t, page.NextIndexInBatch)
	require.Equal(t, 1, *page.NextIndexInBatch)

	page, err = batch.Expand(rows[1:], 1, 3)
	require.Nil(t, err)
	require.Len(t, page.Lines, 2)
	require.False(t, page.HasMore)
	require.Equal(t, big.NewInt(4), page.Lines[0].TokenID)
	require.Equal(t, big.NewInt(5), page.Lines[1].TokenID)
}

func TestExpand_StaleOffsetSkipsRow(t *testing.T) {
	rows := []*core.TokenTransfer{
		batchRow(20, 1, 2),
		batchRow(19, 3),
	}

	page, err := batch.Expand(rows, 5, 10)
	require.Nil(t, err)
	require.Len(t, page.Lines, 1)
	require.Equal(t, big.NewInt(3), page.Lines[0].TokenID)
	require.False(t, page.HasMore)
}

func TestExpand_Empty(t *testing.T) {
	page, err := batch.Expand(nil, 0, 50)
	require.Nil(t, err)
	require.Empty(t, page.Lines)
	require.False(t, page.HasMore)
	require.Nil(t, page.LastRow)
}
