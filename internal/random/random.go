// Package random provides the random byte source of the RND instruction.
//
// A source created with a non-zero seed returns the same sequence of numbers
// on every run, which makes program execution reproducible.
package random

import (
	"math/rand/v2"
	"time"
)

// Random is a seedable random byte source.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a new random source. A zero seed selects a time based seed.
func New(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Byte returns a uniformly distributed random byte.
func (r *Random) Byte() byte {
	return byte(r.rng.UintN(256))
}

// Seed returns the seed that the source was created with.
func (r *Random) Seed() uint64 {
	return r.seed
}
