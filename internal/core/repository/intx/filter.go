package intx

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.InternalTransactionRepository = (*Repository)(nil)

func subjectFilter(q *bun.SelectQuery, a *addr.Address, dir filter.Direction) *bun.SelectQuery {
	if a == nil {
		return q
	}
	switch dir {
	case filter.DirectionFrom:
		return q.Where("from_address = ?", a)
	case filter.DirectionTo:
		return q.Where("to_address = ?", a)
	default:
		return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("from_address = ?", a).WhereOr("to_address = ?", a)
		})
	}
}

func (r *Repository) FilterInternalTransactions(ctx context.Context, req *filter.InternalTransactionsReq) (*filter.InternalTransactionsRes, error) {
	defer core.Timer(time.Now(), "FilterInternalTransactions(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityInternalTransactions, req.Sort, req.Order)

	res := &filter.InternalTransactionsRes{Rows: []*core.InternalTransaction{}}

	var rows []*core.InternalTransaction
	q := r.pg.NewSelect().Model(&rows)

	q = subjectFilter(q, req.Address, req.Direction)
	if len(req.TransactionHash) > 0 {
		q = q.Where("transaction_hash = ?", req.TransactionHash)
	}

	if c := req.Cursor; c != nil && c.BlockNumber != nil && c.TransactionIndex != nil && c.Index != nil {
		q = paginate.Bound(q, &d, d.Columns,
			[]interface{}{*c.BlockNumber, *c.TransactionIndex, *c.Index}, false)
	}

	q = paginate.Order(q, d.Columns, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		ti, idx := uint64(last.TransactionIndex), uint64(last.Index)
		res.NextPageParams = &paging.Cursor{
			BlockNumber:      &last.BlockNumber,
			TransactionIndex: &ti,
			Index:            &idx,
		}
	}
	return res, nil
}
