package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

// TokenTransfer is one stored transfer event.
//
// An ERC-1155 TransferBatch event is kept as a single row carrying parallel
// TokenIDs and Amounts lists; such a row is expanded into one logical line per
// token id when served. Single-asset transfers leave the lists empty and use
// TokenID/Amount instead.
type TokenTransfer struct {
	ch.CHModel    `ch:"token_transfers,partition:token_contract" json:"-"`
	bun.BaseModel `bun:"table:token_transfers" json:"-"`

	TransactionHash []byte `ch:",pk" bun:"type:bytea,notnull" json:"transaction_hash"`
	BlockNumber     uint64 `ch:",pk" bun:",pk,notnull" json:"block_number"`
	LogIndex        uint32 `ch:",pk" bun:",pk,notnull" json:"log_index"`

	FromAddress addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"from"`
	ToAddress   addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"to"`

	TokenContract addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"token_contract"`
	TokenType     TokenType    `ch:",lc" bun:"type:token_type,notnull" json:"token_type"`

	Token *Token `ch:"-" bun:"rel:belongs-to,join:token_contract=contract_address" json:"token,omitempty"`

	// single-asset transfers
	Amount  *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"amount,omitempty" swaggertype:"string"`
	TokenID *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"token_id,omitempty" swaggertype:"string"`

	// multi-asset (batch) transfers; decimal strings, parallel lists
	TokenIDs []string `ch:"-" bun:"token_ids,array" json:"token_ids,omitempty"`
	Amounts  []string `ch:"-" bun:"amounts,array" json:"amounts,omitempty"`

	InsertedAt time.Time `ch:"inserted_at" bun:",notnull" json:"inserted_at"`
}

// Batch reports whether the row stores a multi-asset transfer.
func (t *TokenTransfer) Batch() bool {
	return len(t.TokenIDs) > 0
}

type TokenTransferRepository interface {
	AddTokenTransfers(ctx context.Context, transfers []*TokenTransfer) error
}
