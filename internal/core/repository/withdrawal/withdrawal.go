package withdrawal

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.WithdrawalRepository = (*Repository)(nil)

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
		Model(&core.Withdrawal{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "withdrawal ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Withdrawal{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "withdrawal pg create table")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Withdrawal{}).
		Using("HASH").
		Column("address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "withdrawal address pg create index")
	}

	return nil
}

func (r *Repository) AddWithdrawals(ctx context.Context, withdrawals []*core.Withdrawal) error {
	if len(withdrawals) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&withdrawals).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&withdrawals).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
