package core

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

type Block struct {
	ch.CHModel    `ch:"blocks,partition:miner_address" json:"-"`
	bun.BaseModel `bun:"table:blocks" json:"-"`

	Number uint64 `ch:",pk" bun:",pk,notnull" json:"number"`
	Hash   []byte `ch:",pk" bun:"type:bytea,unique,notnull" json:"hash"`

	MinerAddress addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"miner"`

	Timestamp time.Time `json:"timestamp"`

	GasUsed  uint64      `json:"gas_used"`
	GasLimit uint64      `json:"gas_limit"`
	BaseFee  *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"base_fee" swaggertype:"string"`

	TransactionsCount uint32 `json:"transactions_count"`
	Size              uint32 `json:"size"`
}

type BlockRepository interface {
	AddBlocks(ctx context.Context, blocks []*Block) error
	GetLastBlock(ctx context.Context) (*Block, error)
}
