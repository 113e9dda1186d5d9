package http

import (
	"net/http"

	_ "github.com/evmscan/evmscan/api/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

type QueryController interface {
	GetAddressTransactions(*gin.Context)
	GetAddressTokenTransfers(*gin.Context)
	GetAddressInternalTransactions(*gin.Context)
	GetAddressLogs(*gin.Context)
	GetAddressBlocksValidated(*gin.Context)
	GetAddressWithdrawals(*gin.Context)
	GetAddressNFT(*gin.Context)
	GetAddressNFTCollections(*gin.Context)
	GetAddressTokenBalances(*gin.Context)
	GetAddressCounters(*gin.Context)

	GetTransactions(*gin.Context)
	GetTransaction(*gin.Context)
	GetTokenTransfers(*gin.Context)
	GetBlocks(*gin.Context)
	GetWithdrawals(*gin.Context)
	GetToken(*gin.Context)
}

type Server struct {
	listenHost string
	router     *gin.Engine
}

func NewServer(host string) *Server {
	return &Server{listenHost: host, router: gin.Default()}
}

func (s *Server) RegisterRoutes(t QueryController) {
	base := s.router.Group(basePath)

	address := base.Group("/addresses/:address")
	address.GET("/transactions", t.GetAddressTransactions)
	address.GET("/token-transfers", t.GetAddressTokenTransfers)
	address.GET("/internal-transactions", t.GetAddressInternalTransactions)
	address.GET("/logs", t.GetAddressLogs)
	address.GET("/blocks-validated", t.GetAddressBlocksValidated)
	address.GET("/withdrawals", t.GetAddressWithdrawals)
	address.GET("/nft", t.GetAddressNFT)
	address.GET("/nft/collections", t.GetAddressNFTCollections)
	address.GET("/token-balances", t.GetAddressTokenBalances)
	address.GET("/counters", t.GetAddressCounters)

	base.GET("/transactions", t.GetTransactions)
	base.GET("/transactions/:hash", t.GetTransaction)
	base.GET("/token-transfers", t.GetTokenTransfers)
	base.GET("/blocks", t.GetBlocks)
	base.GET("/withdrawals", t.GetWithdrawals)
	base.GET("/tokens/:address", t.GetToken)

	base.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(basePath+"/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1)))

	base.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, basePath+"/swagger/index.html")
	})
}

func (s *Server) Run() error {
	return s.router.Run(s.listenHost)
}
