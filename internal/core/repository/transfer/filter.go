package transfer

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/batch"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.TokenTransferRepository = (*Repository)(nil)

func subjectFilter(q *bun.SelectQuery, a *addr.Address, dir filter.Direction) *bun.SelectQuery {
	if a == nil {
		return q
	}
	switch dir {
	case filter.DirectionFrom:
		return q.Where("token_transfer.from_address = ?", a)
	case filter.DirectionTo:
		return q.Where("token_transfer.to_address = ?", a)
	default:
		return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("token_transfer.from_address = ?", a).
				WhereOr("token_transfer.to_address = ?", a)
		})
	}
}

// row-level filters run before expansion: a row is included only when its
// stored token type/contract matches, lines are never filtered individually
func (r *Repository) fetchRows(ctx context.Context, req *filter.TokenTransfersReq, d *paging.Descriptor, limit int, weak bool) (ret []*core.TokenTransfer, err error) {
	q := r.pg.NewSelect().Model(&ret).
		Relation("Token")

	q = subjectFilter(q, req.Address, req.Direction)

	if len(req.Types) > 0 {
		q = q.Where("token_transfer.token_type IN (?)", bun.In(req.Types))
	}
	if req.TokenContract != nil {
		q = q.Where("token_transfer.token_contract = ?", req.TokenContract)
	}

	if c := req.Cursor; c != nil && c.BlockNumber != nil && c.Index != nil {
		q = paginate.Bound(q, d,
			[]string{"token_transfer.block_number", "token_transfer.log_index"},
			[]interface{}{*c.BlockNumber, *c.Index}, weak)
	}

	q = paginate.Order(q,
		[]string{"token_transfer.block_number", "token_transfer.log_index"}, d.Order)

	err = q.Limit(limit).Scan(ctx)
	return ret, err
}

func nextTransferCursor(page *batch.Page, req *filter.TokenTransfersReq) *paging.Cursor {
	last := page.LastRow

	c := &paging.Cursor{
		BlockNumber:  &last.BlockNumber,
		IndexInBatch: page.NextIndexInBatch,
	}
	idx := uint64(last.LogIndex)
	c.Index = &idx

	count := len(page.Lines)
	if prev := req.Cursor; prev != nil && prev.ItemsCount != nil {
		count += *prev.ItemsCount
	}
	c.ItemsCount = &count

	return c
}

// FilterTokenTransfers serves one page of logical transfer lines. Page size
// counts lines, not stored rows: a multi-asset row cut by the page boundary
// re-appears in the next page's fetch (the cursor bound turns weak) and
// resumes at its recorded intra-row offset.
func (r *Repository) FilterTokenTransfers(ctx context.Context, req *filter.TokenTransfersReq) (*filter.TokenTransfersRes, error) {
	defer core.Timer(time.Now(), "FilterTokenTransfers(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityTokenTransfers, req.Sort, req.Order)

	res := &filter.TokenTransfersRes{Rows: []*core.TokenTransfer{}}

	offset, weak := 0, false
	if c := req.Cursor; c != nil && c.IndexInBatch != nil {
		offset, weak = *c.IndexInBatch, true
	}

	// one extra row proves has-more; one more covers a resumed row the
	// offset may already have consumed
	rowLimit := req.Limit + 1
	if weak {
		rowLimit++
	}

	rows, err := r.fetchRows(ctx, req, &d, rowLimit, weak)
	if err != nil {
		return res, err
	}

	page, err := batch.Expand(rows, offset, req.Limit)
	if err != nil {
		return res, err
	}

	for i := range page.Lines {
		res.Rows = append(res.Rows, page.Lines[i].Flatten())
	}
	if page.HasMore {
		res.NextPageParams = nextTransferCursor(page, req)
	}
	return res, nil
}
