package rndm

import (
	"math/rand"
	"strconv"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
)

func TokenTransfer(typ core.TokenType) *core.TokenTransfer {
	t := &core.TokenTransfer{
		TransactionHash: Bytes(32),
		BlockNumber:     BlockNumber(),
		LogIndex:        rand.Uint32() % 512,
		FromAddress:     *Address(),
		ToAddress:       *Address(),
		TokenContract:   *Address(),
		TokenType:       typ,
		InsertedAt:      Timestamp(),
	}

	switch typ {
	case core.ERC721:
		t.TokenID = BigInt()
	default:
		t.Amount = BigInt()
	}
	return t
}

func TokenTransfers(a *addr.Address, typ core.TokenType, n int) (ret []*core.TokenTransfer) {
	for i := 0; i < n; i++ {
		t := TokenTransfer(typ)
		t.ToAddress = *a
		ret = append(ret, t)
	}
	return ret
}

// BatchTokenTransfer makes one ERC-1155 row carrying the given parallel
// token-id and amount lists.
func BatchTokenTransfer(a *addr.Address, ids, amounts []uint64) *core.TokenTransfer {
	t := TokenTransfer(core.ERC1155)
	t.ToAddress = *a
	t.Amount, t.TokenID = nil, nil
	for i := range ids {
		t.TokenIDs = append(t.TokenIDs, strconv.FormatUint(ids[i], 10))
		t.Amounts = append(t.Amounts, strconv.FormatUint(amounts[i], 10))
	}
	return t
}
