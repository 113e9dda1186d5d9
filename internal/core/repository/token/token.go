package token

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
)

var _ core.TokenRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func CreateTables(ctx context.Context, chDB *ch.DB, pgDB *bun.DB) error {
	_, err := pgDB.ExecContext(ctx, "CREATE TYPE token_type AS ENUM (?, ?, ?, ?)",
		core.ERC20, core.ERC721, core.ERC1155, core.ERC404)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return errors.Wrap(err, "token_type pg create enum")
	}

	for _, m := range []interface{}{&core.Token{}, &core.NFTInstance{}, &core.TokenBalance{}} {
		_, err := chDB.NewCreateTable().
			IfNotExists().
			Engine("ReplacingMergeTree").
			Model(m).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "token ch create table")
		}

		_, err = pgDB.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "token pg create table")
		}
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.NFTInstance{}).
		Using("HASH").
		Column("owner_address").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "nft instance owner pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.TokenBalance{}).
		Using("HASH").
		Column("address_hash").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token balance address pg create index")
	}

	_, err = pgDB.NewCreateIndex().
		Model(&core.TokenBalance{}).
		Column("value", "id").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "token balance value pg create index")
	}

	return nil
}

func (r *Repository) AddTokens(ctx context.Context, tokens []*core.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&tokens).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&tokens).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) AddNFTInstances(ctx context.Context, instances []*core.NFTInstance) error {
	if len(instances) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&instances).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&instances).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) AddTokenBalances(ctx context.Context, balances []*core.TokenBalance) error {
	if len(balances) == 0 {
		return nil
	}
	_, err := r.ch.NewInsert().Model(&balances).Exec(ctx)
	if err != nil {
		return err
	}
	_, err = r.pg.NewInsert().Model(&balances).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetToken(ctx context.Context, contract *addr.Address) (*core.Token, error) {
	ret := new(core.Token)

	err := r.pg.NewSelect().Model(ret).
		Where("contract_address = ?", contract).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(core.ErrNotFound, "token")
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
