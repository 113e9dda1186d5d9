package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

// Transaction is one externally signed transaction.
// A row with a nil BlockNumber is still pending; pending rows are ordered by
// (inserted_at, hash), validated rows by (block_number, index).
type Transaction struct {
	ch.CHModel    `ch:"transactions,partition:from_address" json:"-"`
	bun.BaseModel `bun:"table:transactions" json:"-"`

	Hash []byte `ch:",pk" bun:"type:bytea,pk,notnull" json:"hash"`

	BlockNumber *uint64 `ch:"block_number" bun:"block_number" json:"block_number"`
	Index       *uint32 `ch:"index" bun:"index" json:"index"`
	BlockHash   []byte  `bun:"type:bytea" json:"block_hash,omitempty"`

	FromAddress addr.Address  `ch:"type:String" bun:"type:bytea,notnull" json:"from"`
	ToAddress   *addr.Address `ch:"type:String" bun:"type:bytea" json:"to"`

	Value    *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"value" swaggertype:"string"`
	GasLimit uint64      `json:"gas_limit"`
	GasUsed  *uint64     `json:"gas_used"`
	GasPrice *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"gas_price" swaggertype:"string"`
	Fee      *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"fee" swaggertype:"string"`

	Nonce  uint64  `json:"nonce"`
	Status *uint8  `json:"status"` // nil while pending
	Input  []byte  `bun:"type:bytea" json:"input,omitempty"`
	Error  *string `json:"error,omitempty"`

	InsertedAt time.Time `ch:"inserted_at" bun:",notnull" json:"inserted_at"`
}

// Pending reports whether the transaction has not been included in a block yet.
func (tx *Transaction) Pending() bool {
	return tx.BlockNumber == nil
}

type TransactionRepository interface {
	AddTransactions(ctx context.Context, transactions []*Transaction) error
	GetTransactionByHash(ctx context.Context, hash []byte) (*Transaction, error)
}
