package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type WithdrawalsReq struct {
	PageReq

	Address *addr.Address
}

type WithdrawalsRes struct {
	Rows           []*core.Withdrawal `json:"items"`
	NextPageParams *paging.Cursor     `json:"next_page_params"`
}

type WithdrawalRepository interface {
	FilterWithdrawals(context.Context, *WithdrawalsReq) (*WithdrawalsRes, error)
}
