package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}

	s3 := NewSeeded(43)
	same := true
	s4 := NewSeeded(42)
	for i := 0; i < 100; i++ {
		if s3.Intn(52) != s4.Intn(52) {
			same = false
		}
	}
	a.False(same)
}
