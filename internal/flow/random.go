package flow

import "math/rand/v2"

// Random is the source of randomness for content selection and spawn jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewRandom returns a randomly seeded PCG source
func NewRandom() Random {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
