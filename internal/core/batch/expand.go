// Package batch reconciles storage-level multi-asset transfer rows with the
// flat, page-stable logical view served to clients.
//
// One stored ERC-1155 batch row carries parallel token-id and amount lists; it
// is served as one logical line per token id. Page size is measured in logical
// lines, so a single row may span a page boundary; the cursor then carries an
// intra-row offset and resumption continues mid-row.
package batch

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/uptrace/bun/extra/bunbig"

	"github.com/evmscan/evmscan/internal/core"
)

// Line is one (token id, amount) pair attributed back to its parent row.
type Line struct {
	Row *core.TokenTransfer

	TokenID *big.Int
	Amount  *big.Int

	// IndexInBatch is the line's position within the squashed expansion of
	// its row; 0 for single-asset rows.
	IndexInBatch int
}

// Squash merges repeated token ids within one row before any page accounting:
// amounts of a repeated id are summed onto its first occurrence and the id
// list is de-duplicated, preserving stored order.
func Squash(tokenIDs, amounts []string) (ids, sums []*big.Int, err error) {
	pos := make(map[string]int, len(tokenIDs))

	for i, rawID := range tokenIDs {
		amount := new(big.Int)
		if i < len(amounts) {
			if _, ok := amount.SetString(amounts[i], 10); !ok {
				return nil, nil, errors.Errorf("malformed batch amount %q", amounts[i])
			}
		}

		id, ok := new(big.Int).SetString(rawID, 10)
		if !ok {
			return nil, nil, errors.Errorf("malformed batch token id %q", rawID)
		}

		if at, seen := pos[rawID]; seen {
			sums[at].Add(sums[at], amount)
			continue
		}
		pos[rawID] = len(ids)
		ids = append(ids, id)
		sums = append(sums, amount)
	}

	return ids, sums, nil
}

// Lines expands one stored row into its ordered logical lines. A single-asset
// row yields exactly one line; a batch row yields one line per distinct token
// id after squashing.
func Lines(row *core.TokenTransfer) ([]Line, error) {
	if !row.Batch() {
		var id, amount *big.Int
		if row.TokenID != nil {
			id = row.TokenID.ToMathBig()
		}
		if row.Amount != nil {
			amount = row.Amount.ToMathBig()
		}
		return []Line{{Row: row, TokenID: id, Amount: amount}}, nil
	}

	ids, sums, err := Squash(row.TokenIDs, row.Amounts)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, len(ids))
	for i := range ids {
		lines[i] = Line{Row: row, TokenID: ids[i], Amount: sums[i], IndexInBatch: i}
	}
	return lines, nil
}

// Flatten renders the line as a served transfer row: the parent row's
// identity with the line's single (token id, amount) pair in place of the
// stored lists.
func (l *Line) Flatten() *core.TokenTransfer {
	row := *l.Row
	row.TokenIDs, row.Amounts = nil, nil
	if l.TokenID != nil {
		row.TokenID = bunbig.FromMathBig(l.TokenID)
	}
	if l.Amount != nil {
		row.Amount = bunbig.FromMathBig(l.Amount)
	}
	return &row
}

// Page is one page worth of logical lines plus the state needed to re-encode
// a cursor.
type Page struct {
	Lines []Line

	HasMore bool

	// LastRow is the row the last served line belongs to; nil for an empty
	// page. NextIndexInBatch is non-nil when the page cut fell inside that
	// row's expansion: it is the offset the next page resumes at, and the
	// cursor bound must then include LastRow itself.
	LastRow          *core.TokenTransfer
	NextIndexInBatch *int
}

// Expand walks rows in their already-resolved order and serves up to limit
// logical lines. offset skips lines of the first row that a previous page
// already served (the mid-row resume case); rows are expected to be fetched
// with at least one row beyond the page so HasMore is decidable.
func Expand(rows []*core.TokenTransfer, offset, limit int) (*Page, error) {
	page := &Page{}

	for ri, row := range rows {
		lines, err := Lines(row)
		if err != nil {
			return nil, err
		}

		skip := 0
		if ri == 0 {
			skip = offset
			if skip >= len(lines) {
				// stale offset past the row's end; the row is exhausted
				continue
			}
		}

		for li := skip; li < len(lines); li++ {
			if len(page.Lines) == limit {
				page.HasMore = true
				if li > 0 {
					// cut mid-row: resume inside this same row
					m := li
					page.LastRow = row
					page.NextIndexInBatch = &m
				}
				return page, nil
			}
			page.Lines = append(page.Lines, lines[li])
			page.LastRow = row
		}
	}

	return page, nil
}
