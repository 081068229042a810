package breakout

import (
	"math"

	"github.com/rosasor/brick-breaker/internal/core"
)

// BallView is the read-only rendering view of a ball.
type BallView struct {
	X, Y, Radius float64
	DX, DY       float64
	InPlay       bool
}

// BrickView is the read-only rendering view of a brick.
type BrickView struct {
	Box      core.Box
	Type     BrickType
	HitsLeft int
	Color    core.Color
}

// PowerUpView is the read-only rendering view of a falling power-up.
type PowerUpView struct {
	Box   core.Box
	Kind  Kind
	Color core.Color
}

// Snapshot is a copy of everything a renderer needs after a tick.
// It shares no memory with the round.
type Snapshot struct {
	Tick        int
	Level       LevelName
	State       State
	Score       int
	Lives       int
	BallCount   int
	Paddle      core.Box
	PaddleSpeed float64
	EffectTicks int
	Balls       []BallView
	Bricks      []BrickView
	PowerUps    []PowerUpView
}

// Snapshot returns the current round state.
func (r *Round) Snapshot() Snapshot {
	balls := make([]BallView, len(r.balls))
	for i, b := range r.balls {
		balls[i] = BallView{X: b.X, Y: b.Y, Radius: b.Radius, DX: b.DX, DY: b.DY, InPlay: b.InPlay}
	}

	bricks := make([]BrickView, len(r.bricks))
	for i, br := range r.bricks {
		bricks[i] = BrickView{Box: br.Box, Type: br.Type, HitsLeft: br.HitsLeft(), Color: br.Color()}
	}

	powerUps := make([]PowerUpView, len(r.powerUps))
	for i, p := range r.powerUps {
		powerUps[i] = PowerUpView{Box: p.Box, Kind: p.Kind, Color: p.Color()}
	}

	return Snapshot{
		Tick:        r.tick,
		Level:       r.level,
		State:       r.state,
		Score:       r.score,
		Lives:       r.lives,
		BallCount:   len(r.balls),
		Paddle:      r.paddle.Box(),
		PaddleSpeed: r.paddle.Speed,
		EffectTicks: r.paddle.EffectTicks(),
		Balls:       balls,
		Bricks:      bricks,
		PowerUps:    powerUps,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, v := range []int{int(snap.State), snap.Score, snap.Lives, snap.BallCount, snap.EffectTicks} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = hashBox(h, snap.Paddle)
	h = h*31 + math.Float64bits(snap.PaddleSpeed)

	for _, b := range snap.Balls {
		for _, f := range []float64{b.X, b.Y, b.DX, b.DY} {
			h = h*31 + math.Float64bits(f)
		}
		if b.InPlay {
			h = h*31 + 1
		}
	}

	for _, br := range snap.Bricks {
		h = hashBox(h, br.Box)
		h = h*31 + uint64(br.HitsLeft) //#nosec G115 -- hash computation
	}

	for _, p := range snap.PowerUps {
		h = hashBox(h, p.Box)
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
	}

	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	for _, f := range []float64{b.X, b.Y, b.W, b.H} {
		h = h*31 + math.Float64bits(f)
	}
	return h
}
