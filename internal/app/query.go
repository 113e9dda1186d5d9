package app

import (
	"context"
	"time"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/aggregate"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/repository"
)

type QueryConfig struct {
	DB *repository.DB

	// CountersTTL bounds how stale a served address counter may be.
	CountersTTL time.Duration

	// CountersCacheSize caps how many (address, counter) entries stay warm.
	CountersCacheSize int
}

type QueryService interface {
	GetLastBlock(ctx context.Context) (*core.Block, error)
	GetTransactionByHash(ctx context.Context, hash []byte) (*core.Transaction, error)
	GetToken(ctx context.Context, contract *addr.Address) (*core.Token, error)

	FilterTransactions(ctx context.Context, req *filter.TransactionsReq) (*filter.TransactionsRes, error)
	FilterTokenTransfers(ctx context.Context, req *filter.TokenTransfersReq) (*filter.TokenTransfersRes, error)
	FilterInternalTransactions(ctx context.Context, req *filter.InternalTransactionsReq) (*filter.InternalTransactionsRes, error)
	FilterLogs(ctx context.Context, req *filter.LogsReq) (*filter.LogsRes, error)
	FilterBlocks(ctx context.Context, req *filter.BlocksReq) (*filter.BlocksRes, error)
	FilterNFTInstances(ctx context.Context, req *filter.NFTInstancesReq) (*filter.NFTInstancesRes, error)
	FilterNFTCollections(ctx context.Context, req *filter.NFTCollectionsReq) (*filter.NFTCollectionsRes, error)
	FilterTokenBalances(ctx context.Context, req *filter.TokenBalancesReq) (*filter.TokenBalancesRes, error)
	FilterWithdrawals(ctx context.Context, req *filter.WithdrawalsReq) (*filter.WithdrawalsRes, error)

	GetAddressCounters(ctx context.Context, a *addr.Address) (*aggregate.AddressCountersRes, error)
}
