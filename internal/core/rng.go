package core

import "math/rand/v2"

// RNG is a seeded PCG source held by value inside game state. Copying a
// state copies its generator, so a state value fully determines every
// random choice that follows from it.
type RNG struct {
	pcg rand.PCG
}

// NewRNG creates a generator from seed.
func NewRNG(seed int64) RNG {
	s := uint64(seed) //nolint:gosec // bit pattern reuse is intended
	return RNG{pcg: *rand.NewPCG(s, s^0x9e3779b97f4a7c15)}
}

func (r *RNG) rand() *rand.Rand {
	return rand.New(&r.pcg)
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.rand().IntN(n)
}

// Float64 returns a value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.rand().Float64()
}

// Bool returns a fair coin flip.
func (r *RNG) Bool() bool {
	return r.pcg.Uint64()&1 == 1
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Bool() {
		return 1
	}
	return -1
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rand().Shuffle(n, swap)
}
