package query

import (
	"context"
	"strconv"
	"time"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/app"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/aggregate"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/repository"
	"github.com/evmscan/evmscan/internal/core/repository/address"
	"github.com/evmscan/evmscan/internal/core/repository/block"
	"github.com/evmscan/evmscan/internal/core/repository/intx"
	"github.com/evmscan/evmscan/internal/core/repository/log"
	"github.com/evmscan/evmscan/internal/core/repository/token"
	"github.com/evmscan/evmscan/internal/core/repository/transfer"
	"github.com/evmscan/evmscan/internal/core/repository/tx"
	"github.com/evmscan/evmscan/internal/core/repository/withdrawal"
	"github.com/evmscan/evmscan/internal/counters"
)

var _ app.QueryService = (*Service)(nil)

const defaultCountersCacheSize = 4096

type Service struct {
	cfg *app.QueryConfig

	txRepo         repository.Transaction
	transferRepo   repository.TokenTransfer
	intxRepo       repository.InternalTransaction
	logRepo        repository.Log
	blockRepo      repository.Block
	tokenRepo      repository.Token
	withdrawalRepo repository.Withdrawal
	addressRepo    aggregate.AddressRepository

	counters *counters.Cache
}

func NewService(_ context.Context, cfg *app.QueryConfig) (*Service, error) {
	var s = new(Service)

	s.cfg = cfg
	ch, pg := s.cfg.DB.CH, s.cfg.DB.PG
	s.txRepo = tx.NewRepository(ch, pg)
	s.transferRepo = transfer.NewRepository(ch, pg)
	s.intxRepo = intx.NewRepository(ch, pg)
	s.logRepo = log.NewRepository(ch, pg)
	s.blockRepo = block.NewRepository(ch, pg)
	s.tokenRepo = token.NewRepository(ch, pg)
	s.withdrawalRepo = withdrawal.NewRepository(ch, pg)
	s.addressRepo = address.NewRepository(ch, pg)

	size := cfg.CountersCacheSize
	if size <= 0 {
		size = defaultCountersCacheSize
	}
	ttl := cfg.CountersTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	s.counters = counters.New(size, ttl)

	return s, nil
}

func (s *Service) GetLastBlock(ctx context.Context) (*core.Block, error) {
	return s.blockRepo.GetLastBlock(ctx)
}

func (s *Service) GetTransactionByHash(ctx context.Context, hash []byte) (*core.Transaction, error) {
	return s.txRepo.GetTransactionByHash(ctx, hash)
}

func (s *Service) GetToken(ctx context.Context, contract *addr.Address) (*core.Token, error) {
	return s.tokenRepo.GetToken(ctx, contract)
}

func (s *Service) FilterTransactions(ctx context.Context, req *filter.TransactionsReq) (*filter.TransactionsRes, error) {
	return s.txRepo.FilterTransactions(ctx, req)
}

func (s *Service) FilterTokenTransfers(ctx context.Context, req *filter.TokenTransfersReq) (*filter.TokenTransfersRes, error) {
	return s.transferRepo.FilterTokenTransfers(ctx, req)
}

func (s *Service) FilterInternalTransactions(ctx context.Context, req *filter.InternalTransactionsReq) (*filter.InternalTransactionsRes, error) {
	return s.intxRepo.FilterInternalTransactions(ctx, req)
}

func (s *Service) FilterLogs(ctx context.Context, req *filter.LogsReq) (*filter.LogsRes, error) {
	return s.logRepo.FilterLogs(ctx, req)
}

func (s *Service) FilterBlocks(ctx context.Context, req *filter.BlocksReq) (*filter.BlocksRes, error) {
	return s.blockRepo.FilterBlocks(ctx, req)
}

func (s *Service) FilterNFTInstances(ctx context.Context, req *filter.NFTInstancesReq) (*filter.NFTInstancesRes, error) {
	return s.tokenRepo.FilterNFTInstances(ctx, req)
}

func (s *Service) FilterNFTCollections(ctx context.Context, req *filter.NFTCollectionsReq) (*filter.NFTCollectionsRes, error) {
	return s.tokenRepo.FilterNFTCollections(ctx, req)
}

func (s *Service) FilterTokenBalances(ctx context.Context, req *filter.TokenBalancesReq) (*filter.TokenBalancesRes, error) {
	return s.tokenRepo.FilterTokenBalances(ctx, req)
}

func (s *Service) FilterWithdrawals(ctx context.Context, req *filter.WithdrawalsReq) (*filter.WithdrawalsRes, error) {
	return s.withdrawalRepo.FilterWithdrawals(ctx, req)
}

// GetAddressCounters serves the four per-address counters through the TTL
// cache; an address the store has never seen yields all-zero counters.
func (s *Service) GetAddressCounters(ctx context.Context, a *addr.Address) (*aggregate.AddressCountersRes, error) {
	subject := a.ToCommon().Hex()

	counts := [...]struct {
		name    string
		compute counters.ComputeFunc
	}{
		{aggregate.CounterTransactions, func(ctx context.Context) (uint64, error) {
			return s.addressRepo.CountTransactions(ctx, a)
		}},
		{aggregate.CounterTokenTransfers, func(ctx context.Context) (uint64, error) {
			return s.addressRepo.CountTokenTransfers(ctx, a)
		}},
		{aggregate.CounterGasUsage, func(ctx context.Context) (uint64, error) {
			return s.addressRepo.SumGasUsage(ctx, a)
		}},
		{aggregate.CounterValidations, func(ctx context.Context) (uint64, error) {
			return s.addressRepo.CountValidatedBlocks(ctx, a)
		}},
	}

	values := make(map[string]string, len(counts))
	for _, c := range counts {
		v, err := s.counters.Get(ctx, subject, c.name, c.compute)
		if err != nil {
			return nil, err
		}
		values[c.name] = strconv.FormatUint(v, 10)
	}

	return &aggregate.AddressCountersRes{
		TransactionsCount:   values[aggregate.CounterTransactions],
		TokenTransfersCount: values[aggregate.CounterTokenTransfers],
		GasUsageCount:       values[aggregate.CounterGasUsage],
		ValidationsCount:    values[aggregate.CounterValidations],
	}, nil
}
