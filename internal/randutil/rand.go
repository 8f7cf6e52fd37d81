// Package randutil builds the seeded random sources used for shuffling and
// Monte Carlo sampling. Every source is explicit; nothing reads a global RNG.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both 64-bit PCG seeds are derived from it so equal seeds give equal sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed returns a seed taken from the wall clock, for callers that did not
// ask for a reproducible run.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// Split derives n independent generators from parent, one per worker.
// The derivation consumes n values from parent, so a fixed parent seed
// yields the same worker streams every time.
func Split(parent *rand.Rand, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewPCG(parent.Uint64(), mix(parent.Uint64()^goldenRatio64)))
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
