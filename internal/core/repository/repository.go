package repository

import (
	"context"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/aggregate"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/repository/block"
	"github.com/evmscan/evmscan/internal/core/repository/intx"
	"github.com/evmscan/evmscan/internal/core/repository/log"
	"github.com/evmscan/evmscan/internal/core/repository/token"
	"github.com/evmscan/evmscan/internal/core/repository/transfer"
	"github.com/evmscan/evmscan/internal/core/repository/tx"
	"github.com/evmscan/evmscan/internal/core/repository/withdrawal"
)

type Transaction interface {
	core.TransactionRepository
	filter.TransactionRepository
}

type TokenTransfer interface {
	core.TokenTransferRepository
	filter.TokenTransferRepository
}

type InternalTransaction interface {
	core.InternalTransactionRepository
	filter.InternalTransactionRepository
}

type Log interface {
	core.LogRepository
	filter.LogRepository
}

type Block interface {
	core.BlockRepository
	filter.BlockRepository
}

type Token interface {
	core.TokenRepository
	filter.TokenRepository
}

type Withdrawal interface {
	core.WithdrawalRepository
	filter.WithdrawalRepository
}

type Address interface {
	aggregate.AddressRepository
}

// CreateTables bootstraps every table of the read store, in both databases.
func CreateTables(ctx context.Context, db *DB) error {
	if err := token.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := tx.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := transfer.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := intx.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := log.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := block.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	if err := withdrawal.CreateTables(ctx, db.CH, db.PG); err != nil {
		return err
	}
	return nil
}
