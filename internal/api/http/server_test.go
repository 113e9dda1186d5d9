package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/aggregate"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
)

// stubService records the last bound request per listing.
type stubService struct {
	txReq       *filter.TransactionsReq
	transferReq *filter.TokenTransfersReq
}

func (s *stubService) GetLastBlock(context.Context) (*core.Block, error) { return nil, nil }
func (s *stubService) GetTransactionByHash(context.Context, []byte) (*core.Transaction, error) {
	return nil, core.ErrNotFound
}
func (s *stubService) GetToken(context.Context, *addr.Address) (*core.Token, error) {
	return nil, core.ErrNotFound
}

func (s *stubService) FilterTransactions(_ context.Context, req *filter.TransactionsReq) (*filter.TransactionsRes, error) {
	s.txReq = req
	return &filter.TransactionsRes{Rows: []*core.Transaction{}, NextPageParams: req.Cursor}, nil
}

func (s *stubService) FilterTokenTransfers(_ context.Context, req *filter.TokenTransfersReq) (*filter.TokenTransfersRes, error) {
	s.transferReq = req
	return &filter.TokenTransfersRes{Rows: []*core.TokenTransfer{}}, nil
}

func (s *stubService) FilterInternalTransactions(context.Context, *filter.InternalTransactionsReq) (*filter.InternalTransactionsRes, error) {
	return &filter.InternalTransactionsRes{}, nil
}
func (s *stubService) FilterLogs(context.Context, *filter.LogsReq) (*filter.LogsRes, error) {
	return &filter.LogsRes{}, nil
}
func (s *stubService) FilterBlocks(context.Context, *filter.BlocksReq) (*filter.BlocksRes, error) {
	return &filter.BlocksRes{}, nil
}
func (s *stubService) FilterNFTInstances(context.Context, *filter.NFTInstancesReq) (*filter.NFTInstancesRes, error) {
	return &filter.NFTInstancesRes{}, nil
}
func (s *stubService) FilterNFTCollections(context.Context, *filter.NFTCollectionsReq) (*filter.NFTCollectionsRes, error) {
	return &filter.NFTCollectionsRes{}, nil
}
func (s *stubService) FilterTokenBalances(context.Context, *filter.TokenBalancesReq) (*filter.TokenBalancesRes, error) {
	return &filter.TokenBalancesRes{}, nil
}
func (s *stubService) FilterWithdrawals(context.Context, *filter.WithdrawalsReq) (*filter.WithdrawalsRes, error) {
	return &filter.WithdrawalsRes{}, nil
}

func (s *stubService) GetAddressCounters(context.Context, *addr.Address) (*aggregate.AddressCountersRes, error) {
	return &aggregate.AddressCountersRes{
		TransactionsCount:   "0",
		TokenTransfersCount: "0",
		GasUsageCount:       "0",
		ValidationsCount:    "0",
	}, nil
}

func newTestServer(t *testing.T) (*Server, *stubService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := new(stubService)
	srv := NewServer("localhost:0")
	srv.RegisterRoutes(NewController(svc))
	return srv, svc
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.router.ServeHTTP(w, req)
	return w
}

const testAddr = "0x00000000219ab540356cBB839Cbe05303d7705Fa"

func TestServer_AddressValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(srv, "/api/v2/addresses/not-an-address/transactions")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(srv, "/api/v2/addresses/"+testAddr+"/transactions")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_MalformedPageToken(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(srv, "/api/v2/addresses/"+testAddr+"/transactions?page_token=%25%25garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(srv, "/api/v2/transactions?page_token=bm90LWpzb24")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_LegacyParamsMatchPageToken(t *testing.T) {
	srv, svc := newTestServer(t)

	bn, idx := uint64(19000100), uint64(7)
	want := &paging.Cursor{BlockNumber: &bn, Index: &idx, Stream: paging.StreamValidated}

	w := get(srv, "/api/v2/addresses/"+testAddr+"/transactions?page_token="+want.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	compact := svc.txReq.Cursor

	w = get(srv, "/api/v2/addresses/"+testAddr+"/transactions?block_number=19000100&index=7&stream=validated")
	require.Equal(t, http.StatusOK, w.Code)
	legacy := svc.txReq.Cursor

	require.Equal(t, want, compact)
	require.Equal(t, want, legacy)
}

func TestServer_NextPageParamsCarryPageToken(t *testing.T) {
	srv, _ := newTestServer(t)

	bn, idx := uint64(19000100), uint64(7)
	want := &paging.Cursor{BlockNumber: &bn, Index: &idx, Stream: paging.StreamValidated}

	w := get(srv, "/api/v2/addresses/"+testAddr+"/transactions?page_token="+want.Encode())
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		NextPageParams map[string]interface{} `json:"next_page_params"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.NextPageParams)

	// flat legacy fields plus the compact token a new client echoes back
	assert.Equal(t, float64(19000100), body.NextPageParams["block_number"])
	token, ok := body.NextPageParams["page_token"].(string)
	require.True(t, ok)

	got, err := paging.Decode(token)
	require.Nil(t, err)
	assert.Equal(t, want, got)
}

func TestServer_SortJunkPassesThrough(t *testing.T) {
	srv, svc := newTestServer(t)

	w := get(srv, "/api/v2/addresses/"+testAddr+"/transactions?sort=foo&order=bar")
	require.Equal(t, http.StatusOK, w.Code)

	// junk reaches the descriptor registry untouched; the repository side
	// resolves it to the entity default
	assert.Equal(t, "foo", svc.txReq.Sort)
	assert.Equal(t, "bar", svc.txReq.Order)
}

func TestServer_TypeFilterParsing(t *testing.T) {
	srv, svc := newTestServer(t)

	w := get(srv, "/api/v2/addresses/"+testAddr+"/token-transfers?type=ERC-20,ERC-1155&type=ERC-9999")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []core.TokenType{core.ERC20, core.ERC1155}, svc.transferReq.Types)

	w = get(srv, "/api/v2/addresses/"+testAddr+"/token-transfers?token=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_GlobalStreamRestriction(t *testing.T) {
	srv, svc := newTestServer(t)

	w := get(srv, "/api/v2/transactions?filter=pending")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.txReq.OnlyPending)
	assert.Nil(t, svc.txReq.Address)

	w = get(srv, "/api/v2/transactions?filter=validated")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.txReq.OnlyValidated)
}

func TestServer_ItemLookups(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(srv, "/api/v2/transactions/0x0000000000000000000000000000000000000000000000000000000000000001")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(srv, "/api/v2/transactions/0xdead")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(srv, "/api/v2/tokens/"+testAddr)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(srv, "/api/v2/addresses/"+testAddr+"/counters")
	assert.Equal(t, http.StatusOK, w.Code)
}
