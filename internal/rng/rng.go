// Package rng provides the random sources a game session draws its target from.
package rng

import "math/rand/v2"

// Source returns integers uniformly distributed over the inclusive range [lo, hi].
// Callers guarantee lo <= hi.
type Source interface {
	IntN(lo, hi int) int
}

// Uniform is a Source backed by a PCG generator. It is not safe for concurrent use.
type Uniform struct {
	r *rand.Rand
}

// NewUniform returns a Uniform whose sequence is fully determined by seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomUniform returns a Uniform seeded from the runtime's random state.
func NewRandomUniform() *Uniform {
	return &Uniform{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN handles every lo <= hi, including ranges wider than MaxInt. The span
// is computed in unsigned arithmetic, where hi-lo never overflows.
func (u *Uniform) IntN(lo, hi int) int {
	span := uint64(uint(hi - lo))
	if span == uint64(^uint(0)) {
		// full width of int: every bit pattern is a valid draw
		return int(uint(u.r.Uint64()))
	}
	return lo + int(uint(u.r.Uint64N(span+1)))
}

// Fixed always yields the same value, clamped into the requested range.
type Fixed int

func (f Fixed) IntN(lo, hi int) int {
	n := int(f)
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
