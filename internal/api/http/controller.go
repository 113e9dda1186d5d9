package http

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/app"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
)

// @title      		evmscan
// @version         0.1.0
// @description     Read API over indexed EVM chain data.

// @license.name  	Apache 2.0
// @license.url   	http://www.apache.org/licenses/LICENSE-2.0.html

// @host      		localhost
// @BasePath  		/api/v2
// @schemes 		http

var basePath = "/api/v2"

var _ QueryController = (*Controller)(nil)

type Controller struct {
	svc app.QueryService
}

func NewController(svc app.QueryService) *Controller {
	return &Controller{svc: svc}
}

func paramErr(ctx *gin.Context, param string, err error) {
	ctx.IndentedJSON(http.StatusBadRequest, gin.H{"param": param, "error": err.Error()})
}

func notFoundErr(ctx *gin.Context, err error) {
	ctx.IndentedJSON(http.StatusNotFound, gin.H{"error": err.Error()})
}

func internalErr(ctx *gin.Context, err error) {
	if errors.Is(err, core.ErrInvalidCursor) || errors.Is(err, core.ErrInvalidParameter) {
		paramErr(ctx, "page_token", err)
		return
	}
	log.Error().Str("path", ctx.FullPath()).Err(err).Msg("internal server error")
	ctx.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pathAddress(ctx *gin.Context) (*addr.Address, bool) {
	a, err := new(addr.Address).FromString(ctx.Param("address"))
	if err != nil {
		paramErr(ctx, "address", errors.Wrap(core.ErrInvalidParameter, err.Error()))
		return nil, false
	}
	return a, true
}

// bindPage fills the shared paging fields: sort, order, limit and the cursor
// decoded from either the compact page_token or the legacy flat parameters.
func bindPage(ctx *gin.Context, req *filter.PageReq, entity core.Entity) bool {
	if err := ctx.ShouldBindQuery(req); err != nil {
		paramErr(ctx, "page", err)
		return false
	}

	c, err := paging.DecodeQuery(ctx.Request.URL.Query(), entity)
	if err != nil {
		paramErr(ctx, "page_token", err)
		return false
	}
	req.Cursor = c
	return true
}

// tokenTypes parses the repeatable, comma-separable `type` parameter; unknown
// members are dropped silently.
func tokenTypes(ctx *gin.Context) (ret []core.TokenType) {
	for _, v := range ctx.QueryArray("type") {
		for _, s := range strings.Split(v, ",") {
			if t, ok := core.TokenTypeFromString(strings.TrimSpace(s)); ok {
				ret = append(ret, t)
			}
		}
	}
	return ret
}

func direction(ctx *gin.Context) filter.Direction {
	switch d := filter.Direction(ctx.Query("filter")); d {
	case filter.DirectionTo, filter.DirectionFrom:
		return d
	default:
		return ""
	}
}

// GetAddressTransactions godoc
//	@Summary		address transactions
//	@Description	Returns transactions sent from or to the address, pending ones first
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		filter      query   string 	false   "to | from"
//  @Param   		sort	    query   string 	false	"block_number | fee | value"
//  @Param   		order	    query   string 	false	"asc | desc"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.TransactionsRes
//	@Router			/addresses/{address}/transactions [get]
func (c *Controller) GetAddressTransactions(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.TransactionsReq{Address: a, Direction: direction(ctx)}
	if !bindPage(ctx, &req.PageReq, core.EntityTransactions) {
		return
	}

	ret, err := c.svc.FilterTransactions(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressTokenTransfers godoc
//	@Summary		address token transfers
//	@Description	Returns token transfer lines involving the address; batch rows are expanded
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		filter      query   string 	false   "to | from"
//  @Param   		type	    query   []string 	false	"token standards"
//  @Param   		token	    query   string 	false	"token contract address"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.TokenTransfersRes
//	@Router			/addresses/{address}/token-transfers [get]
func (c *Controller) GetAddressTokenTransfers(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.TokenTransfersReq{
		Address:   a,
		Direction: direction(ctx),
		Types:     tokenTypes(ctx),
	}
	if v := ctx.Query("token"); v != "" {
		tc, err := new(addr.Address).FromString(v)
		if err != nil {
			paramErr(ctx, "token", errors.Wrap(core.ErrInvalidParameter, err.Error()))
			return
		}
		req.TokenContract = tc
	}
	if !bindPage(ctx, &req.PageReq, core.EntityTokenTransfers) {
		return
	}

	ret, err := c.svc.FilterTokenTransfers(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressInternalTransactions godoc
//	@Summary		address internal transactions
//	@Description	Returns message calls produced while executing transactions
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		filter      query   string 	false   "to | from"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.InternalTransactionsRes
//	@Router			/addresses/{address}/internal-transactions [get]
func (c *Controller) GetAddressInternalTransactions(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.InternalTransactionsReq{Address: a, Direction: direction(ctx)}
	if !bindPage(ctx, &req.PageReq, core.EntityInternalTransactions) {
		return
	}

	ret, err := c.svc.FilterInternalTransactions(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressLogs godoc
//	@Summary		address logs
//	@Description	Returns event logs emitted by the address
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		topic	    query   string 	false	"topics[0] filter, 0x-prefixed"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.LogsRes
//	@Router			/addresses/{address}/logs [get]
func (c *Controller) GetAddressLogs(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.LogsReq{Address: a}
	if v := ctx.Query("topic"); v != "" {
		req.FirstTopic = common.FromHex(v)
	}
	if !bindPage(ctx, &req.PageReq, core.EntityLogs) {
		return
	}

	ret, err := c.svc.FilterLogs(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressBlocksValidated godoc
//	@Summary		blocks validated by address
//	@Description	Returns blocks the address has mined or validated
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.BlocksRes
//	@Router			/addresses/{address}/blocks-validated [get]
func (c *Controller) GetAddressBlocksValidated(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.BlocksReq{Miner: a}
	if !bindPage(ctx, &req.PageReq, core.EntityBlocks) {
		return
	}

	ret, err := c.svc.FilterBlocks(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressWithdrawals godoc
//	@Summary		address withdrawals
//	@Description	Returns beacon withdrawals credited to the address
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.WithdrawalsRes
//	@Router			/addresses/{address}/withdrawals [get]
func (c *Controller) GetAddressWithdrawals(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.WithdrawalsReq{Address: a}
	if !bindPage(ctx, &req.PageReq, core.EntityWithdrawals) {
		return
	}

	ret, err := c.svc.FilterWithdrawals(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressNFT godoc
//	@Summary		address NFT instances
//	@Description	Returns NFT items owned by the address
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		type	    query   []string 	false	"token standards"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.NFTInstancesRes
//	@Router			/addresses/{address}/nft [get]
func (c *Controller) GetAddressNFT(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.NFTInstancesReq{Owner: a, Types: tokenTypes(ctx)}
	if !bindPage(ctx, &req.PageReq, core.EntityNFTInstances) {
		return
	}

	ret, err := c.svc.FilterNFTInstances(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressNFTCollections godoc
//	@Summary		address NFT collections
//	@Description	Returns the address's NFT holdings grouped by contract
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		type	    query   []string 	false	"token standards"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.NFTCollectionsRes
//	@Router			/addresses/{address}/nft/collections [get]
func (c *Controller) GetAddressNFTCollections(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.NFTCollectionsReq{Owner: a, Types: tokenTypes(ctx)}
	if !bindPage(ctx, &req.PageReq, core.EntityNFTCollections) {
		return
	}

	ret, err := c.svc.FilterNFTCollections(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressTokenBalances godoc
//	@Summary		address token balances
//	@Description	Returns the address's current token balances, largest first
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//  @Param   		type	    query   []string 	false	"token standards"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.TokenBalancesRes
//	@Router			/addresses/{address}/token-balances [get]
func (c *Controller) GetAddressTokenBalances(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	req := &filter.TokenBalancesReq{Address: a, Types: tokenTypes(ctx)}
	if !bindPage(ctx, &req.PageReq, core.EntityTokenBalances) {
		return
	}

	ret, err := c.svc.FilterTokenBalances(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetAddressCounters godoc
//	@Summary		address counters
//	@Description	Returns per-address aggregate counters; values may lag writes up to the cache TTL
//	@Tags			address
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "address"
//	@Success		200		{object}	aggregate.AddressCountersRes
//	@Router			/addresses/{address}/counters [get]
func (c *Controller) GetAddressCounters(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	ret, err := c.svc.GetAddressCounters(ctx, a)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetTransactions godoc
//	@Summary		transactions
//	@Description	Returns the global transaction listing, pending ones first
//	@Tags			transaction
//	@Accept			json
//	@Produce		json
//  @Param   		filter      query   string 	false   "pending | validated"
//  @Param   		sort	    query   string 	false	"block_number | fee | value"
//  @Param   		order	    query   string 	false	"asc | desc"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.TransactionsRes
//	@Router			/transactions [get]
func (c *Controller) GetTransactions(ctx *gin.Context) {
	req := new(filter.TransactionsReq)
	switch ctx.Query("filter") {
	case "pending":
		req.OnlyPending = true
	case "validated":
		req.OnlyValidated = true
	}
	if !bindPage(ctx, &req.PageReq, core.EntityTransactions) {
		return
	}

	ret, err := c.svc.FilterTransactions(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetTransaction godoc
//	@Summary		transaction info
//	@Description	Returns one transaction by hash
//	@Tags			transaction
//	@Accept			json
//	@Produce		json
//  @Param   		hash     path    string 	true    "transaction hash"
//	@Success		200		{object}	core.Transaction
//	@Router			/transactions/{hash} [get]
func (c *Controller) GetTransaction(ctx *gin.Context) {
	h := ctx.Param("hash")
	raw := common.FromHex(h)
	if len(raw) != common.HashLength {
		paramErr(ctx, "hash", errors.Wrap(core.ErrInvalidParameter, h))
		return
	}

	ret, err := c.svc.GetTransactionByHash(ctx, raw)
	if errors.Is(err, core.ErrNotFound) {
		notFoundErr(ctx, err)
		return
	}
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetTokenTransfers godoc
//	@Summary		token transfers
//	@Description	Returns the global token transfer listing
//	@Tags			token
//	@Accept			json
//	@Produce		json
//  @Param   		type	    query   []string 	false	"token standards"
//  @Param   		token	    query   string 	false	"token contract address"
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.TokenTransfersRes
//	@Router			/token-transfers [get]
func (c *Controller) GetTokenTransfers(ctx *gin.Context) {
	req := &filter.TokenTransfersReq{Types: tokenTypes(ctx)}
	if v := ctx.Query("token"); v != "" {
		tc, err := new(addr.Address).FromString(v)
		if err != nil {
			paramErr(ctx, "token", errors.Wrap(core.ErrInvalidParameter, err.Error()))
			return
		}
		req.TokenContract = tc
	}
	if !bindPage(ctx, &req.PageReq, core.EntityTokenTransfers) {
		return
	}

	ret, err := c.svc.FilterTokenTransfers(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetBlocks godoc
//	@Summary		blocks
//	@Description	Returns the global block listing, newest first
//	@Tags			block
//	@Accept			json
//	@Produce		json
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.BlocksRes
//	@Router			/blocks [get]
func (c *Controller) GetBlocks(ctx *gin.Context) {
	req := new(filter.BlocksReq)
	if !bindPage(ctx, &req.PageReq, core.EntityBlocks) {
		return
	}

	ret, err := c.svc.FilterBlocks(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetWithdrawals godoc
//	@Summary		withdrawals
//	@Description	Returns the global withdrawal listing, newest first
//	@Tags			withdrawal
//	@Accept			json
//	@Produce		json
//  @Param   		limit	    query   int 	false	"page size"
//  @Param   		page_token  query   string 	false	"continuation token"
//	@Success		200		{object}	filter.WithdrawalsRes
//	@Router			/withdrawals [get]
func (c *Controller) GetWithdrawals(ctx *gin.Context) {
	req := new(filter.WithdrawalsReq)
	if !bindPage(ctx, &req.PageReq, core.EntityWithdrawals) {
		return
	}

	ret, err := c.svc.FilterWithdrawals(ctx, req)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetToken godoc
//	@Summary		token info
//	@Description	Returns one token by contract address
//	@Tags			token
//	@Accept			json
//	@Produce		json
//  @Param   		address     path    string 	true    "token contract address"
//	@Success		200		{object}	core.Token
//	@Router			/tokens/{address} [get]
func (c *Controller) GetToken(ctx *gin.Context) {
	a, ok := pathAddress(ctx)
	if !ok {
		return
	}

	ret, err := c.svc.GetToken(ctx, a)
	if errors.Is(err, core.ErrNotFound) {
		notFoundErr(ctx, err)
		return
	}
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}
