package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type InternalTransactionsReq struct {
	PageReq

	Address *addr.Address

	Direction Direction

	// TransactionHash scopes the listing to one parent transaction.
	TransactionHash []byte
}

type InternalTransactionsRes struct {
	Rows           []*core.InternalTransaction `json:"items"`
	NextPageParams *paging.Cursor              `json:"next_page_params"`
}

type InternalTransactionRepository interface {
	FilterInternalTransactions(context.Context, *InternalTransactionsReq) (*InternalTransactionsRes, error)
}
