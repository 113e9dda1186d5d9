package log

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.LogRepository = (*Repository)(nil)

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
		Model(&core.Log{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "log ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Log{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "log pg create table")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Log{}).
		Using("HASH").
		Column("address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "log address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Log{}).
		Column("first_topic").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "log first_topic pg create index")
	}

	return nil
}

func (r *Repository) AddLogs(ctx context.Context, logs []*core.Log) error {
	if len(logs) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&logs).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&logs).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
