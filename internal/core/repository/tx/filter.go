package tx

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.TransactionRepository = (*Repository)(nil)

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

func (r *Repository) fetchPending(ctx context.Context, req *filter.TransactionsReq, d *paging.Descriptor, limit int) (ret []*core.Transaction, err error) {
	q := r.pg.NewSelect().Model(&ret).
		Where("block_number IS NULL")

	q = subjectFilter(q, req.Address, req.Direction)

	if c := req.Cursor; c != nil && c.Stream == paging.StreamPending && c.InsertedAt != nil {
		q = paginate.Bound(q, d, d.PendingColumns,
			[]interface{}{*c.InsertedAt, common.FromHex(c.Hash)}, false)
	}

	q = paginate.Order(q, d.PendingColumns, d.Order)

	err = q.Limit(limit).Scan(ctx)
	return ret, err
}

func decimalBig(s *string) (*bunbig.Int, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := new(big.Int).SetString(*s, 10)
	if !ok {
		return nil, false
	}
	return bunbig.FromMathBig(v), true
}

// validatedBound maps the cursor onto the descriptor's comparison tuple.
// A pending-stream cursor carries no validated position: the validated
// stream then starts from its beginning.
func validatedBound(d *paging.Descriptor, c *paging.Cursor) ([]interface{}, bool) {
	if c == nil || c.Stream == paging.StreamPending {
		return nil, false
	}

	vals := make([]interface{}, 0, len(d.Columns))
	for _, col := range d.Columns {
		switch col {
		case "block_number":
			if c.BlockNumber == nil {
				return nil, false
			}
			vals = append(vals, *c.BlockNumber)
		case "index":
			if c.Index == nil {
				return nil, false
			}
			vals = append(vals, *c.Index)
		case "fee":
			v, ok := decimalBig(c.Fee)
			if !ok {
				return nil, false
			}
			vals = append(vals, v)
		case "value":
			v, ok := decimalBig(c.Value)
			if !ok {
				return nil, false
			}
			vals = append(vals, v)
		}
	}
	return vals, true
}

func (r *Repository) fetchValidated(ctx context.Context, req *filter.TransactionsReq, d *paging.Descriptor, limit int) (ret []*core.Transaction, err error) {
	q := r.pg.NewSelect().Model(&ret).
		Where("block_number IS NOT NULL")

	q = subjectFilter(q, req.Address, req.Direction)

	if vals, ok := validatedBound(d, req.Cursor); ok {
		q = paginate.Bound(q, d, d.Columns, vals, false)
	}

	q = paginate.Order(q, d.Columns, d.Order)

	err = q.Limit(limit).Scan(ctx)
	return ret, err
}

func nextTxCursor(d *paging.Descriptor, rows []*core.Transaction, prev *paging.Cursor) *paging.Cursor {
	last := rows[len(rows)-1]

	c := new(paging.Cursor)

	count := len(rows)
	if prev != nil && prev.ItemsCount != nil {
		count += *prev.ItemsCount
	}
	c.ItemsCount = &count

	if last.Pending() {
		ts := last.InsertedAt
		c.InsertedAt = &ts
		c.Hash = addr.HexBytes(last.Hash)
		c.Stream = paging.StreamPending
		return c
	}

	bn, idx := *last.BlockNumber, uint64(*last.Index)
	c.BlockNumber, c.Index = &bn, &idx
	c.Stream = paging.StreamValidated

	// a validated row may still miss its fee or value; the cursor then
	// omits the field and the next page restarts the secondary sort
	switch d.Sort {
	case "fee":
		if last.Fee != nil {
			s := last.Fee.String()
			c.Fee = &s
		}
	case "value":
		if last.Value != nil {
			s := last.Value.String()
			c.Value = &s
		}
	}
	return c
}

// FilterTransactions serves one page of a transaction listing. The pending
// sub-stream (insertion order) is served ahead of the validated sub-stream
// (block position order); when the pending stream runs out mid-page the fetch
// continues into validated rows, and the emitted cursor's stream marker tells
// the next page where to resume. The two fetches are sequential: the second
// one's budget depends on how much the first returned.
func (r *Repository) FilterTransactions(ctx context.Context, req *filter.TransactionsReq) (*filter.TransactionsRes, error) {
	defer core.Timer(time.Now(), "FilterTransactions(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityTransactions, req.Sort, req.Order)

	res := &filter.TransactionsRes{Rows: []*core.Transaction{}}
	need := req.Limit + 1

	// pending rows only participate in the default block-position order;
	// the secondary sorts compare fields pending rows do not have yet
	withPending := d.Sort == "block_number" && !req.OnlyValidated
	withValidated := !req.OnlyPending

	stream := paging.StreamPending
	if !withPending {
		stream = paging.StreamValidated
	}
	if c := req.Cursor; c != nil && c.Stream == paging.StreamValidated {
		stream = paging.StreamValidated
	}

	var rows []*core.Transaction

	if stream == paging.StreamPending {
		pend, err := r.fetchPending(ctx, req, &d, need)
		if err != nil {
			return res, err
		}
		rows = append(rows, pend...)
	}

	if withValidated && len(rows) < need {
		val, err := r.fetchValidated(ctx, req, &d, need-len(rows))
		if err != nil {
			return res, err
		}
		rows = append(rows, val...)
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		res.NextPageParams = nextTxCursor(&d, rows, req.Cursor)
	}
	return res, nil
}
