package block

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.BlockRepository = (*Repository)(nil)

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
		Model(&core.Block{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.Block{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block pg create table")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.Block{}).
		Using("HASH").
		Column("miner_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "block miner pg create index")
	}

	return nil
}

func (r *Repository) AddBlocks(ctx context.Context, blocks []*core.Block) error {
	if len(blocks) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&blocks).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&blocks).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetLastBlock(ctx context.Context) (*core.Block, error) {
	ret := new(core.Block)

	err := r.pg.NewSelect().Model(ret).
		Order("number DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(core.ErrNotFound, "block")
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
