// Package address computes per-address aggregate counters. Counts run against
// ClickHouse; the row store only serves listings.
package address

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/go-clickhouse/ch"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/aggregate"
)

var _ aggregate.AddressRepository = (*Repository)(nil)

type Repository struct {
	ch *ch.DB
	pg *bun.DB
}

func NewRepository(_ch *ch.DB, _pg *bun.DB) *Repository {
	return &Repository{ch: _ch, pg: _pg}
}

func (r *Repository) CountTransactions(ctx context.Context, a *addr.Address) (uint64, error) {
	n, err := r.ch.NewSelect().Model((*core.Transaction)(nil)).
		Where("from_address = ? OR to_address = ?", a, a).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

func (r *Repository) CountTokenTransfers(ctx context.Context, a *addr.Address) (uint64, error) {
	n, err := r.ch.NewSelect().Model((*core.TokenTransfer)(nil)).
		Where("from_address = ? OR to_address = ?", a, a).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

func (r *Repository) SumGasUsage(ctx context.Context, a *addr.Address) (uint64, error) {
	var sum uint64

	err := r.ch.NewSelect().Model((*core.Transaction)(nil)).
		ColumnExpr("sum(gas_used) as gas_usage").
		Where("from_address = ?", a).
		Scan(ctx, &sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *Repository) CountValidatedBlocks(ctx context.Context, a *addr.Address) (uint64, error) {
	n, err := r.ch.NewSelect().Model((*core.Block)(nil)).
		Where("miner_address = ?", a).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}
