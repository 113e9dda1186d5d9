package filter

import (
	"context"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/paging"
)

type LogsReq struct {
	PageReq

	Address *addr.Address

	// FirstTopic is the decoded `topic` filter on topics[0].
	FirstTopic []byte

	TransactionHash []byte
}

type LogsRes struct {
	Rows           []*core.Log    `json:"items"`
	NextPageParams *paging.Cursor `json:"next_page_params"`
}

type LogRepository interface {
	FilterLogs(context.Context, *LogsReq) (*LogsRes, error)
}
