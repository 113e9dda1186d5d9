package core

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
)

// Withdrawal is one beacon-chain withdrawal credited to an address.
// The consensus-assigned index is globally unique and is the paging tiebreak.
type Withdrawal struct {
	ch.CHModel    `ch:"withdrawals,partition:address" json:"-"`
	bun.BaseModel `bun:"table:withdrawals" json:"-"`

	Index uint64 `ch:",pk" bun:",pk,notnull" json:"index"`

	ValidatorIndex uint64       `json:"validator_index"`
	Address        addr.Address `ch:"type:String" bun:"type:bytea,notnull" json:"address"`

	Amount *bunbig.Int `ch:"type:UInt256" bun:"type:numeric" json:"amount" swaggertype:"string"`

	BlockNumber uint64 `ch:",pk" bun:",notnull" json:"block_number"`
}

type WithdrawalRepository interface {
	AddWithdrawals(ctx context.Context, withdrawals []*Withdrawal) error
}
