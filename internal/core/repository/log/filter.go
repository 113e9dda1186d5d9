package log

import (
	"context"
	"time"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.LogRepository = (*Repository)(nil)

func (r *Repository) FilterLogs(ctx context.Context, req *filter.LogsReq) (*filter.LogsRes, error) {
	defer core.Timer(time.Now(), "FilterLogs(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityLogs, req.Sort, req.Order)

	res := &filter.LogsRes{Rows: []*core.Log{}}

	var rows []*core.Log
	q := r.pg.NewSelect().Model(&rows)

	if req.Address != nil {
		q = q.Where("address = ?", req.Address)
	}
	if len(req.FirstTopic) > 0 {
		q = q.Where("first_topic = ?", req.FirstTopic)
	}
	if len(req.TransactionHash) > 0 {
		q = q.Where("transaction_hash = ?", req.TransactionHash)
	}

	if c := req.Cursor; c != nil && c.BlockNumber != nil && c.Index != nil {
		q = paginate.Bound(q, &d, d.Columns,
			[]interface{}{*c.BlockNumber, *c.Index}, false)
	}

	q = paginate.Order(q, d.Columns, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		idx := uint64(last.Index)
		res.NextPageParams = &paging.Cursor{
			BlockNumber: &last.BlockNumber,
			Index:       &idx,
		}
	}
	return res, nil
}
