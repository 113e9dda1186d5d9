package block

import (
	"context"
	"time"

	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.BlockRepository = (*Repository)(nil)

func (r *Repository) FilterBlocks(ctx context.Context, req *filter.BlocksReq) (*filter.BlocksRes, error) {
	defer core.Timer(time.Now(), "FilterBlocks(%s)", req.Miner)

	req.Norm()
	d := paging.Resolve(core.EntityBlocks, req.Sort, req.Order)

	res := &filter.BlocksRes{Rows: []*core.Block{}}

	var rows []*core.Block
	q := r.pg.NewSelect().Model(&rows)

	if req.Miner != nil {
		q = q.Where("miner_address = ?", req.Miner)
	}

	if c := req.Cursor; c != nil && c.BlockNumber != nil {
		q = paginate.Bound(q, &d, d.Columns, []interface{}{*c.BlockNumber}, false)
	}

	q = paginate.Order(q, d.Columns, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		res.NextPageParams = &paging.Cursor{BlockNumber: &last.Number}
	}
	return res, nil
}
