package randx

import (
	"time"

	"golang.org/x/exp/rand"
)

// New returns a deterministic source for the given seed. Every stochastic
// engine call site takes one of these explicitly so runs can be replayed in
// tests; production boundaries pass Entropy() instead.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Entropy returns a fresh time-seeded source for a single-goroutine run.
func Entropy() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Derive returns an independent child source for element i of a fan-out keyed
// by a base seed. Workers must not share one *rand.Rand, and deriving per
// index keeps the joined result set identical regardless of scheduling order.
func Derive(seed uint64, i int) *rand.Rand {
	// splitmix64 finalizer over seed+index
	z := seed + uint64(i+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return New(z ^ (z >> 31))
}

// Seed resolves a caller-supplied seed: zero means "not reproducible",
// drawing a fresh seed from the clock.
func Seed(requested uint64) uint64 {
	if requested != 0 {
		return requested
	}
	return uint64(time.Now().UnixNano())
}
