package breakout

import (
	"testing"

	"github.com/rosasor/brick-breaker/internal/config"
)

// scriptedRand replays fixed draws, then falls back to defaults.
type scriptedRand struct {
	floats   []float64
	ints     []int
	fallback float64 // Float64 once floats run out
}

// noSpawn never rolls below any spawn chance.
func noSpawn() *scriptedRand {
	return &scriptedRand{fallback: 0.99}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallback
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func newTestRound(t *testing.T, level LevelName, rng Rand) *Round {
	t.Helper()
	return newTestRoundWith(t, config.DefaultBreakoutConfig(), level, rng)
}

func newTestRoundWith(t *testing.T, cfg config.BreakoutConfig, level LevelName, rng Rand) *Round {
	t.Helper()
	r, err := NewRound(cfg, level, rng)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

// destroyAll forces every brick to zero hits and returns the points earned.
func destroyAll(r *Round) int {
	total := 0
	for _, br := range r.bricks {
		total += br.Type.Points()
		for !br.Destroyed() {
			r.hitBrick(br)
		}
	}
	return total
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
