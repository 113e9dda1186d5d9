package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type TokenTransfersReq struct {
	PageReq

	Address *addr.Address

	Direction Direction

	// Types is the parsed `type` enum set; unknown members are dropped
	// silently. Empty means all standards.
	Types []core.TokenType

	// TokenContract is the `token` contract-address filter.
	TokenContract *addr.Address
}

// Rows are logical transfer lines: batch rows are squashed and expanded
// before page accounting, so one stored row may contribute several items
// and an item never repeats a token id from its row.
type TokenTransfersRes struct {
	Rows           []*core.TokenTransfer `json:"items"`
	NextPageParams *paging.Cursor        `json:"next_page_params"`
}

type TokenTransferRepository interface {
	FilterTokenTransfers(context.Context, *TokenTransfersReq) (*TokenTransfersRes, error)
}
