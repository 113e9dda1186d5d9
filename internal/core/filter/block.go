package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type BlocksReq struct {
	PageReq

	// Miner scopes the listing to blocks validated by one address.
	Miner *addr.Address
}

type BlocksRes struct {
	Rows           []*core.Block  `json:"items"`
	NextPageParams *paging.Cursor `json:"next_page_params"`
}

type BlockRepository interface {
	FilterBlocks(context.Context, *BlocksReq) (*BlocksRes, error)
}
