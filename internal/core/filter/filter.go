// Package filter holds the request/response shapes of every paginated listing
// plus the repository interfaces serving them. Controllers bind query
// parameters onto the request structs; repositories resolve descriptors,
// apply cursor bounds and emit the next-page cursor.
package filter

import (
	"github.com/evmscan/evmscan/internal/core/paging"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// PageReq carries the pagination parameters common to every listing request.
// Sort and Order are passed through the descriptor registry, which silently
// falls back to the entity default on anything it does not recognize.
type PageReq struct {
	Sort  string `form:"sort"`
	Order string `form:"order"`
	Limit int    `form:"limit"`

	// Cursor is decoded from either the compact page_token or the legacy
	// flat parameters; nil means first page.
	Cursor *paging.Cursor
}

// Norm clamps the page size into its allowed range.
func (r *PageReq) Norm() {
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
}

// Direction restricts a listing to rows where the subject is the sender or
// the receiver. Anything but "to" or "from" means both sides.
type Direction string

const (
	DirectionTo   = Direction("to")
	DirectionFrom = Direction("from")
)
