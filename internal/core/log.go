package core

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

// Log is one event log emitted by a contract, keyed by (block_number, index).
// FirstTopic duplicates Topics[0] into its own indexed column for the `topic`
// filter.
type Log struct {
	ch.CHModel    `ch:"logs,partition:address" json:"-"`
	bun.BaseModel `bun:"table:logs" json:"-"`

	BlockNumber uint64 `ch:",pk" bun:",pk,notnull" json:"block_number"`
	Index       uint32 `ch:",pk" bun:",pk,notnull" json:"index"`

	TransactionHash []byte `bun:"type:bytea,notnull" json:"transaction_hash"`

	Address addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"address"`

	FirstTopic []byte   `bun:"type:bytea" json:"-"`
	Topics     []string `ch:"-" bun:",array" json:"topics"`
	Data       []byte   `bun:"type:bytea" json:"data"`
}

type LogRepository interface {
	AddLogs(ctx context.Context, logs []*Log) error
}
