package transfer

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/internal/core"
)

var _ core.TokenTransferRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func createIndexes(ctx context.Context, pgDB *bun.DB) error {
	_, err := pgDB.NewCreateIndex().
		Model(&core.TokenTransfer{}).
		Using("HASH").
		Column("from_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer from_address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.TokenTransfer{}).
		Using("HASH").
		Column("to_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer to_address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.TokenTransfer{}).
		Using("HASH").
		Column("token_contract").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer token_contract pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.TokenTransfer{}).
		Column("token_type").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer token_type pg create index")
	}

	return nil
}

func CreateTables(ctx context.Context, chDB *ch.DB, pgDB *bun.DB) error {
	_, err := pgDB.ExecContext(ctx, "CREATE TYPE token_type AS ENUM (?, ?, ?, ?)",
		core.ERC20, core.ERC721, core.ERC1155, core.ERC404)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return errors.Wrap(err, "token type pg create enum")
	}

	_, err = chDB.NewCreateTable().
		IfNotExists().
		Engine("ReplacingMergeTree").
		Model(&core.TokenTransfer{}).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer ch create table")
	}

	_, err = pgDB.NewCreateTable().
		Model(&core.TokenTransfer{}).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token transfer pg create table")
	}

	return createIndexes(ctx, pgDB)
}

func (r *Repository) AddTokenTransfers(ctx context.Context, transfers []*core.TokenTransfer) error {
	if len(transfers) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&transfers).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&transfers).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
