package pattern

import "unicode/utf16"

// LCG parameters (Numerical Recipes).
const (
	lcgMul = 1664525
	lcgInc = 1013904223
	lcgDiv = 1 << 32
)

// Rand is the state of a 32-bit linear congruential generator.
// The zero value is valid but degenerate-looking; use NewRand.
type Rand struct {
	state uint32
}

// NewRand returns a generator seeded with seed. A zero seed is coerced to 1.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Float64 advances the generator and returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = r.state*lcgMul + lcgInc
	return float64(r.state) / lcgDiv
}

// State returns the current generator state.
func (r *Rand) State() uint32 {
	return r.state
}

// SeedFrom folds s into a non-zero seed with the classic seed*31+c string
// hash over UTF-16 code units, so the same text always yields the same
// texture and different texts diverge from the first character.
func SeedFrom(s string) uint32 {
	var seed uint32
	for _, u := range utf16.Encode([]rune(s)) {
		seed = seed*31 + uint32(u)
	}
	if seed == 0 {
		return 1
	}
	return seed
}
