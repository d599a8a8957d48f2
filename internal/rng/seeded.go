package rng

import "math/rand"

// Seeded is a deterministic generator for tests
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator that produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random int in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
