package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates an RNG using the provided seed. A zero seed draws one from
// the wall clock so unseeded runs differ from each other.
func NewRNG(seed int64) *RNG {
	return NewRNGStream(seed, 0)
}

// NewRNGStream creates an RNG on one of several independent sequences for
// the same seed. A zero seed is resolved from the wall clock as in NewRNG.
func NewRNGStream(seed int64, stream uint64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream)), seed: seed}
}

// Seed returns the seed the generator started from, after clock resolution.
func (r *RNG) Seed() int64 { return r.seed }

// Chance reports true with probability p. Values outside [0, 1] saturate.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a random int in [lo, hi], both inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](r *RNG, xs []T) T {
	return xs[r.r.IntN(len(xs))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
