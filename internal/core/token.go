package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

type Token struct {
	ch.CHModel    `ch:"tokens,partition:token_type" json:"-"`
	bun.BaseModel `bun:"table:tokens" json:"-"`

	ContractAddress addr.Address `ch:"type:String" bun:"type:bytea,pk,notnull" json:"contract_address"`

	TokenType TokenType `ch:",lc" bun:"type:token_type,notnull" json:"token_type"`

	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`

	TotalSupply  *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"total_supply" swaggertype:"string"`
	HoldersCount uint64      `json:"holders_count"`
}

// NFTInstance is one minted item of an ERC-721/1155/404 token, keyed by
// (token_contract, token_id).
type NFTInstance struct {
	ch.CHModel    `ch:"nft_instances,partition:token_contract" json:"-"`
	bun.BaseModel `bun:"table:nft_instances" json:"-"`

	TokenContract addr.Address `ch:"type:String" bun:"type:bytea,pk,notnull" json:"token_contract"`
	TokenID       *bunbig.Int  `ch:"type:UInt256" bun:"type:numeric,pk" json:"token_id" swaggertype:"string"`

	Token *Token `ch:"-" bun:"rel:belongs-to,join:token_contract=contract_address" json:"token,omitempty"`

	OwnerAddress addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"owner"`

	MetadataURI string `json:"metadata_uri,omitempty"`
}

// TokenBalance is the current balance of one holder in one token
// (one row per token id for NFT contracts). The serial ID is the paging
// tiebreak for the balance-ordered listing.
type TokenBalance struct {
	ch.CHModel    `ch:"token_balances,partition:token_contract" json:"-"`
	bun.BaseModel `bun:"table:token_balances" json:"-"`

	ID uint64 `ch:",pk" bun:",pk,autoincrement" json:"id"`

	AddressHash   addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"address"`
	TokenContract addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"token_contract"`
	TokenType     TokenType    `ch:",lc" bun:"type:token_type,notnull" json:"token_type"`

	Token *Token `ch:"-" bun:"rel:belongs-to,join:token_contract=contract_address" json:"token,omitempty"`

	TokenID *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"token_id,omitempty" swaggertype:"string"`
	Value   *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"value" swaggertype:"string"`

	UpdatedAt time.Time `json:"updated_at"`
}

type TokenRepository interface {
	AddTokens(ctx context.Context, tokens []*Token) error
	AddNFTInstances(ctx context.Context, instances []*NFTInstance) error
	AddTokenBalances(ctx context.Context, balances []*TokenBalance) error
	GetToken(ctx context.Context, contract *addr.Address) (*Token, error)
}
