// Package rng abstracts the source of randomness so card shuffles can be
// made deterministic under test.
package rng

// Generator produces random integers
type Generator interface {
	// Intn returns a uniform random int in [0, n)
	Intn(n int) int
}
