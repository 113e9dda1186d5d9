package intx

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.InternalTransactionRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func CreateTables(ctx context.Context, chDB *ch.DB, pgDB *bun.DB) error {
	_, err := chDB.NewCreateTable().
		IfNotExists().
		Engine("ReplacingMergeTree").
		Model(&core.InternalTransaction{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "internal transaction ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.InternalTransaction{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "internal transaction pg create table")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.InternalTransaction{}).
		Using("HASH").
		Column("from_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "internal transaction from_address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.InternalTransaction{}).
		Using("HASH").
		Column("to_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "internal transaction to_address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.InternalTransaction{}).
		Using("HASH").
		Column("transaction_hash").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "internal transaction tx hash pg create index")
	}

	return nil
}

func (r *Repository) AddInternalTransactions(ctx context.Context, transactions []*core.InternalTransaction) error {
	if len(transactions) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&transactions).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&transactions).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
