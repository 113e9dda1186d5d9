package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type NFTInstancesReq struct {
	PageReq

	// Owner scopes the listing to one holder.
	Owner *addr.Address

	Types []core.TokenType
}

type NFTInstancesRes struct {
	Rows           []*core.NFTInstance `json:"items"`
	NextPageParams *paging.Cursor      `json:"next_page_params"`
}

// NFTCollection groups one holder's items by contract.
type NFTCollection struct {
	Token *core.Token `json:"token"`

	TokenContract addr.Address `json:"token_contract"`
	Amount        uint64       `json:"amount"`

	// TokenInstances previews up to a few instances of the collection.
	TokenInstances []*core.NFTInstance `json:"token_instances,omitempty"`
}

type NFTCollectionsReq struct {
	PageReq

	Owner *addr.Address

	Types []core.TokenType
}

type NFTCollectionsRes struct {
	Rows           []*NFTCollection `json:"items"`
	NextPageParams *paging.Cursor   `json:"next_page_params"`
}

type TokenBalancesReq struct {
	PageReq

	Address *addr.Address

	Types []core.TokenType
}

type TokenBalancesRes struct {
	Rows           []*core.TokenBalance `json:"items"`
	NextPageParams *paging.Cursor       `json:"next_page_params"`
}

type TokenRepository interface {
	FilterNFTInstances(context.Context, *NFTInstancesReq) (*NFTInstancesRes, error)
	FilterNFTCollections(context.Context, *NFTCollectionsReq) (*NFTCollectionsRes, error)
	FilterTokenBalances(context.Context, *TokenBalancesReq) (*TokenBalancesRes, error)
}
