package withdrawal

import (
	"context"
	"time"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.WithdrawalRepository = (*Repository)(nil)

func (r *Repository) FilterWithdrawals(ctx context.Context, req *filter.WithdrawalsReq) (*filter.WithdrawalsRes, error) {
	defer core.Timer(time.Now(), "FilterWithdrawals(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityWithdrawals, req.Sort, req.Order)

	res := &filter.WithdrawalsRes{Rows: []*core.Withdrawal{}}

	var rows []*core.Withdrawal
	q := r.pg.NewSelect().Model(&rows)

	if req.Address != nil {
		q = q.Where("address = ?", req.Address)
	}

	if c := req.Cursor; c != nil && c.Index != nil {
		q = paginate.Bound(q, &d, d.Columns, []interface{}{*c.Index}, false)
	}

	q = paginate.Order(q, d.Columns, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		res.NextPageParams = &paging.Cursor{Index: &last.Index}
	}
	return res, nil
}
