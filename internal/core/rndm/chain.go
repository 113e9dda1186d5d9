package rndm

import (
	"math/rand"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
)

func Block(miner *addr.Address) *core.Block {
	return &core.Block{
		Number:            BlockNumber(),
		Hash:              Bytes(32),
		MinerAddress:      *miner,
		Timestamp:         Timestamp(),
		GasUsed:           rand.Uint64() % 30e6,
		GasLimit:          30e6,
		BaseFee:           BigInt(),
		TransactionsCount: rand.Uint32() % 300,
		Size:              rand.Uint32() % 1e5,
	}
}

func Blocks(miner *addr.Address, n int) (ret []*core.Block) {
	for i := 0; i < n; i++ {
		ret = append(ret, Block(miner))
	}
	return ret
}

func Log(emitter *addr.Address) *core.Log {
	topic := Bytes(32)
	return &core.Log{
		BlockNumber:     BlockNumber(),
		Index:           rand.Uint32() % 512,
		TransactionHash: Bytes(32),
		Address:         *emitter,
		FirstTopic:      topic,
		Topics:          []string{addr.HexBytes(topic), addr.HexBytes(Bytes(32))},
		Data:            Bytes(64),
	}
}

func Logs(emitter *addr.Address, n int) (ret []*core.Log) {
	for i := 0; i < n; i++ {
		ret = append(ret, Log(emitter))
	}
	return ret
}

func Withdrawal(a *addr.Address) *core.Withdrawal {
	return &core.Withdrawal{
		Index:          BlockNumber(), // reuse the monotonic counter for uniqueness
		ValidatorIndex: rand.Uint64() % 1e6,
		Address:        *a,
		Amount:         BigInt(),
		BlockNumber:    BlockNumber(),
	}
}

func Withdrawals(a *addr.Address, n int) (ret []*core.Withdrawal) {
	for i := 0; i < n; i++ {
		ret = append(ret, Withdrawal(a))
	}
	return ret
}

func Token(typ core.TokenType) *core.Token {
	return &core.Token{
		ContractAddress: *Address(),
		TokenType:       typ,
		Name:            String(12),
		Symbol:          String(4),
		Decimals:        18,
		TotalSupply:     BigInt(),
		HoldersCount:    rand.Uint64() % 1e5,
	}
}

func NFTInstance(owner *addr.Address, token *core.Token) *core.NFTInstance {
	return &core.NFTInstance{
		TokenContract: token.ContractAddress,
		TokenID:       BigInt(),
		OwnerAddress:  *owner,
		MetadataURI:   "ipfs://" + String(32),
	}
}

func TokenBalance(holder *addr.Address, token *core.Token) *core.TokenBalance {
	return &core.TokenBalance{
		AddressHash:   *holder,
		TokenContract: token.ContractAddress,
		TokenType:     token.TokenType,
		Value:         BigInt(),
		UpdatedAt:     Timestamp(),
	}
}
