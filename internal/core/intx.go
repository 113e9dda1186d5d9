package core

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

// InternalTransaction is one message call produced while executing a
// transaction, keyed by (block_number, transaction_index, index).
type InternalTransaction struct {
	ch.CHModel    `ch:"internal_transactions,partition:from_address" json:"-"`
	bun.BaseModel `bun:"table:internal_transactions" json:"-"`

	BlockNumber      uint64 `ch:",pk" bun:",pk,notnull" json:"block_number"`
	TransactionIndex uint32 `ch:",pk" bun:",pk,notnull" json:"transaction_index"`
	Index            uint32 `ch:",pk" bun:",pk,notnull" json:"index"`

	TransactionHash []byte `bun:"type:bytea,notnull" json:"transaction_hash"`

	CallType string `ch:",lc" json:"call_type"` // call, delegatecall, staticcall, create, selfdestruct

	FromAddress addr.Address  `ch:"type:String" bun:"type:bytea,notnull" json:"from"`
	ToAddress   *addr.Address `ch:"type:String" bun:"type:bytea" json:"to"`

	Value    *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"value" swaggertype:"string"`
	GasLimit uint64      `json:"gas_limit"`

	Error *string `json:"error,omitempty"`
}

type InternalTransactionRepository interface {
	AddInternalTransactions(ctx context.Context, transactions []*InternalTransaction) error
}
