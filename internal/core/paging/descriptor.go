package paging

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/evmscan/evmscan/internal/core"
)

type Order string

const (
	Asc  = Order("asc")
	Desc = Order("desc")
)

// Descriptor is a resolved total order for one entity listing: the ordered
// comparison columns (ending in a unique tiebreak, all sharing one direction
// so the cursor bound is a single row-value comparison) plus entity traits the
// composer needs.
type Descriptor struct {
	Entity core.Entity
	Sort   string
	Order  Order

	// Columns is the full comparison tuple, leading sort column first.
	Columns []string

	// Split marks entities served from two disjoint sub-streams
	// (pending + validated transactions) that are merged into one page
	// sequence. PendingColumns is the pending stream's own tuple.
	Split          bool
	PendingColumns []string

	// Filters lists the filter query parameters the entity supports;
	// anything else on the request is silently ignored.
	Filters []string
}

// CmpOp is the SQL comparison placing a row strictly after the cursor bound
// in this descriptor's direction.
func (d *Descriptor) CmpOp() string {
	if d.Order == Asc {
		return ">"
	}
	return "<"
}

type entityOrders struct {
	defaultSort  string
	defaultOrder Order
	sorts        map[string][]string
	split        bool
	pending      []string
	filters      []string
}

// registry fixes, per entity, the allowed sort keys and their comparison
// tuples. Every tuple ends in a primary key or unique composite, so no two
// rows ever compare equal and cursoring stays deterministic.
var registry = map[core.Entity]entityOrders{
	core.EntityTransactions: {
		defaultSort:  "block_number",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"block_number": {"block_number", "index"},
			"fee":          {"fee", "block_number", "index"},
			"value":        {"value", "block_number", "index"},
		},
		split:   true,
		pending: []string{"inserted_at", "hash"},
		filters: []string{"filter"},
	},
	core.EntityTokenTransfers: {
		defaultSort:  "block_number",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"block_number": {"block_number", "log_index"},
		},
		filters: []string{"filter", "type", "token"},
	},
	core.EntityInternalTransactions: {
		defaultSort:  "block_number",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"block_number": {"block_number", "transaction_index", "index"},
		},
		filters: []string{"filter"},
	},
	core.EntityLogs: {
		defaultSort:  "block_number",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"block_number": {"block_number", "index"},
		},
		filters: []string{"topic"},
	},
	core.EntityBlocks: {
		defaultSort:  "number",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"number": {"number"},
		},
	},
	core.EntityNFTInstances: {
		defaultSort:  "token_id",
		defaultOrder: Asc,
		sorts: map[string][]string{
			"token_id": {"token_contract", "token_id"},
		},
		filters: []string{"type"},
	},
	core.EntityNFTCollections: {
		defaultSort:  "token_contract",
		defaultOrder: Asc,
		sorts: map[string][]string{
			"token_contract": {"token_contract"},
		},
		filters: []string{"type"},
	},
	core.EntityTokenBalances: {
		defaultSort:  "balance",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"balance": {"value", "id"},
		},
		filters: []string{"type"},
	},
	core.EntityWithdrawals: {
		defaultSort:  "index",
		defaultOrder: Desc,
		sorts: map[string][]string{
			"index": {"index"},
		},
	},
}

// Resolve maps request sort/order parameters onto a descriptor. Unknown sort
// keys and malformed order values silently degrade to the entity default;
// wrong ordering params are ignored by contract, never rejected.
func Resolve(entity core.Entity, sort, order string) Descriptor {
	reg, ok := registry[entity]
	if !ok {
		// unknown entity gets a bare block_number order; callers only
		// reach this from compiled-in entity constants
		reg = registry[core.EntityBlocks]
	}

	key := strcase.ToSnake(strings.TrimSpace(sort))
	if _, ok := reg.sorts[key]; !ok {
		key = reg.defaultSort
	}

	o := Order(strings.ToLower(strings.TrimSpace(order)))
	if o != Asc && o != Desc {
		o = reg.defaultOrder
	}

	return Descriptor{
		Entity:         entity,
		Sort:           key,
		Order:          o,
		Columns:        reg.sorts[key],
		Split:          reg.split,
		PendingColumns: reg.pending,
		Filters:        reg.filters,
	}
}

// SupportsFilter reports whether the entity accepts the given filter
// parameter; unsupported filters are dropped silently by the caller.
func (d *Descriptor) SupportsFilter(name string) bool {
	for _, f := range d.Filters {
		if f == name {
			return true
		}
	}
	return false
}
