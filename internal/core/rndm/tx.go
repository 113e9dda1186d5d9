package rndm

import (
	"math/rand"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
)

func Transaction(a *addr.Address) *core.Transaction {
	n, i, gas, status := BlockNumber(), rand.Uint32()%256, rand.Uint64()%1e6, uint8(1)

	return &core.Transaction{
		Hash:        Bytes(32),
		BlockNumber: &n,
		Index:       &i,
		BlockHash:   Bytes(32),
		FromAddress: *a,
		ToAddress:   Address(),
		Value:       BigInt(),
		GasLimit:    21000 + gas,
		GasUsed:     &gas,
		GasPrice:    BigInt(),
		Fee:         BigInt(),
		Nonce:       rand.Uint64() % 1e4,
		Status:      &status,
		InsertedAt:  Timestamp(),
	}
}

func Transactions(a *addr.Address, n int) (ret []*core.Transaction) {
	for i := 0; i < n; i++ {
		ret = append(ret, Transaction(a))
	}
	return ret
}

func PendingTransaction(a *addr.Address) *core.Transaction {
	tx := Transaction(a)
	tx.BlockNumber, tx.Index, tx.BlockHash, tx.GasUsed, tx.Status = nil, nil, nil, nil, nil
	tx.Fee = nil
	return tx
}

func PendingTransactions(a *addr.Address, n int) (ret []*core.Transaction) {
	for i := 0; i < n; i++ {
		ret = append(ret, PendingTransaction(a))
	}
	return ret
}

func InternalTransaction(a *addr.Address) *core.InternalTransaction {
	return &core.InternalTransaction{
		BlockNumber:      BlockNumber(),
		TransactionIndex: rand.Uint32() % 256,
		Index:            rand.Uint32() % 64,
		TransactionHash:  Bytes(32),
		CallType:         "call",
		FromAddress:      *a,
		ToAddress:        Address(),
		Value:            BigInt(),
		GasLimit:         rand.Uint64() % 1e6,
	}
}

func InternalTransactions(a *addr.Address, n int) (ret []*core.InternalTransaction) {
	for i := 0; i < n; i++ {
		ret = append(ret, InternalTransaction(a))
	}
	return ret
}
