// Package paginate turns a resolved descriptor and a decoded cursor into
// bounded, ordered bun fetches: the cursor's tiebreak tuple becomes one
// row-value comparison over the full tuple, the fetch over-reads by one row
// and the extra row decides has-more.
package paginate

import (
	"strings"

	"github.com/uptrace/bun"

	"github.com/evmscan/evmscan/internal/core/paging"
)

// CompareExpr builds the row-value comparison for a tiebreak tuple:
// (a, b) < (?, ?). Comparing the whole tuple, not just the leading column,
// is what keeps rows sharing a leading key from being skipped or repeated.
func CompareExpr(cols []string, op string) string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") ")
	b.WriteString(op)
	b.WriteString(" (")
	for i := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteByte(')')

	return b.String()
}

// Bound restricts q to rows strictly after the cursor position in the
// descriptor's direction. weak keeps the bound row itself in range; the
// mid-batch resume case needs that, since the cursor row still owes lines.
func Bound(q *bun.SelectQuery, d *paging.Descriptor, cols []string, vals []interface{}, weak bool) *bun.SelectQuery {
	op := d.CmpOp()
	if weak {
		op += "="
	}
	return q.Where(CompareExpr(cols, op), vals...)
}

// Order applies the descriptor direction to every tuple column, leading sort
// column first.
func Order(q *bun.SelectQuery, cols []string, o paging.Order) *bun.SelectQuery {
	dir := " DESC"
	if o == paging.Asc {
		dir = " ASC"
	}
	for _, c := range cols {
		q = q.OrderExpr(c + dir)
	}
	return q
}

// Trim drops the over-fetched extra row: rows were fetched with limit+1 and
// the extra one only proves another page exists.
func Trim[T any](rows []T, limit int) ([]T, bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
