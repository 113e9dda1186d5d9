package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type TransactionsReq struct {
	PageReq

	// Address scopes the listing to one subject; nil lists globally.
	Address *addr.Address

	// Direction restricts rows to one side of the subject (to | from);
	// controllers parse it from the `filter` query value.
	Direction Direction

	// global listing only: restrict to one sub-stream
	OnlyPending   bool
	OnlyValidated bool
}

type TransactionsRes struct {
	Rows           []*core.Transaction `json:"items"`
	NextPageParams *paging.Cursor      `json:"next_page_params"`
}

type TransactionRepository interface {
	FilterTransactions(context.Context, *TransactionsReq) (*TransactionsRes, error)
}
