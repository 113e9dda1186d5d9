// Package aggregate holds the request/response shapes of non-paginated
// counter endpoints and the repository interface computing them.
package aggregate

import (
	"context"

	"github.com/evmscan/evmscan/addr"
)

// Counter values travel as integer-as-string fields; an unknown subject gets
// all-zero counters, never an error.
type AddressCountersRes struct {
	TransactionsCount   string `json:"transactions_count"`
	TokenTransfersCount string `json:"token_transfers_count"`
	GasUsageCount       string `json:"gas_usage_count"`
	ValidationsCount    string `json:"validations_count"`
}

const (
	CounterTransactions   = "transactions_count"
	CounterTokenTransfers = "token_transfers_count"
	CounterGasUsage       = "gas_usage_count"
	CounterValidations    = "validations_count"
)

// AddressRepository computes fresh aggregate values; the counters cache in
// front of it decides when to call these.
type AddressRepository interface {
	CountTransactions(ctx context.Context, a *addr.Address) (uint64, error)
	CountTokenTransfers(ctx context.Context, a *addr.Address) (uint64, error)
	SumGasUsage(ctx context.Context, a *addr.Address) (uint64, error)
	CountValidatedBlocks(ctx context.Context, a *addr.Address) (uint64, error)
}
