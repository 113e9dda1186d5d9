package tx

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.TransactionRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func createIndexes(ctx context.Context, pgDB *bun.DB) error {
	_, err := pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Using("HASH").
		Column("from_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction from_address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Using("HASH").
		Column("to_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction to_address pg create index")
	}

	// validated tiebreak
	_, err = pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Unique().
		Column("block_number", "index").
		Where("block_number IS NOT NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction block position pg create unique index")
	}

	// pending tiebreak
	_, err = pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Column("inserted_at", "hash").
		Where("block_number IS NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction pending pg create index")
	}

	// secondary sorts
	_, err = pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Column("fee").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction fee pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Transaction{}).
		Column("value").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction value pg create index")
	}

	return nil
}

func CreateTables(ctx context.Context, chDB *ch.DB, pgDB *bun.DB) error {
	_, err := chDB.NewCreateTable().
		IfNotExists().
		Engine("ReplacingMergeTree").
		Model(&core.Transaction{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Transaction{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "transaction pg create table")
	}

	return createIndexes(ctx, pgDB)
}

func (r *Repository) AddTransactions(ctx context.Context, transactions []*core.Transaction) error {
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

func (r *Repository) GetTransactionByHash(ctx context.Context, hash []byte) (*core.Transaction, error) {
	ret := new(core.Transaction)

	err := r.pg.NewSelect().Model(ret).
		Where("hash = ?", hash).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(core.ErrNotFound, "transaction")
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
