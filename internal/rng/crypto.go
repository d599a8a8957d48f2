package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand. Live tables shuffle with it.
type Crypto struct{}

// Intn returns a uniform random int in [0, n). It panics if the underlying
// reader fails.
func (c Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}
