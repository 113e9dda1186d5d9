package core

// Entity names one listable entity type served by the query API.
type Entity string

const (
	EntityTransactions         = Entity("transactions")
	EntityTokenTransfers       = Entity("token_transfers")
	EntityInternalTransactions = Entity("internal_transactions")
	EntityLogs                 = Entity("logs")
	EntityBlocks               = Entity("blocks")
	EntityNFTInstances         = Entity("nft_instances")
	EntityNFTCollections       = Entity("nft_collections")
	EntityTokenBalances        = Entity("token_balances")
	EntityWithdrawals          = Entity("withdrawals")
)

// TokenType is a token standard as exposed through the `type` query filter.
type TokenType string

const (
	ERC20   = TokenType("ERC-20")
	ERC721  = TokenType("ERC-721")
	ERC1155 = TokenType("ERC-1155")
	ERC404  = TokenType("ERC-404")
)

func TokenTypeFromString(s string) (TokenType, bool) {
	switch TokenType(s) {
	case ERC20, ERC721, ERC1155, ERC404:
		return TokenType(s), true
	}
	return "", false
}
