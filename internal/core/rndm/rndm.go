package rndm

import (
	"math/rand"
	"time"

	"github.com/uptrace/bun/extra/bunbig"

	"github.com/evmscan/evmscan/addr"
)

var (
	lastBlockNumber uint64 = 19_000_000
	timestamp              = time.Now().UTC()
)

func String(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func Bytes(l int) []byte {
	token := make([]byte, l)
	rand.Read(token)
	return token
}

func Address() *addr.Address {
	a := new(addr.Address)
	copy(a[:], Bytes(20))
	return a
}

func BigInt() *bunbig.Int {
	return bunbig.FromUInt64(rand.Uint64())
}

// BlockNumber returns a fresh, strictly increasing block height, so generated
// rows never collide on the validated tiebreak tuple.
func BlockNumber() uint64 {
	lastBlockNumber++
	return lastBlockNumber
}

// Timestamp returns a fresh, strictly increasing insertion time for the
// pending tiebreak tuple.
func Timestamp() time.Time {
	timestamp = timestamp.Add(time.Second)
	return timestamp
}
