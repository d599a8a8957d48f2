package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// enough draws that missing a value is vanishingly unlikely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	for i := 0; i < 5; i++ {
		a.True(found[i], "expected to draw %d", i)
	}

	a.Len(found, 5)
}
