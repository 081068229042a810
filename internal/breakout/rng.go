package breakout

import "math/rand/v2"

// Rand is the source of every random draw the round makes: spawn rolls,
// power-up kinds, clone speed factors and serve direction.
// Tests substitute a scripted implementation.
type Rand interface {
	Float64() float64 // In [0, 1)
	IntN(n int) int   // In [0, n)
}

// NewRand returns a seeded deterministic source.
func NewRand(seed int64) Rand {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
