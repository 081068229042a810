package breakout

import (
	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
)

// Kind represents the type of a falling power-up.
type Kind int

const (
	KindExtend    Kind = iota // Widen paddle
	KindShrink                // Narrow paddle
	KindSpeedUp               // Faster paddle
	KindExtraLife             // One more life
	KindMultiBall             // Clone balls in play
)

// String returns the name of the power-up kind.
func (k Kind) String() string {
	switch k {
	case KindExtend:
		return "Extend"
	case KindShrink:
		return "Shrink"
	case KindSpeedUp:
		return "SpeedUp"
	case KindExtraLife:
		return "ExtraLife"
	case KindMultiBall:
		return "MultiBall"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindExtend:
		return 'E'
	case KindShrink:
		return 'S'
	case KindSpeedUp:
		return '+'
	case KindExtraLife:
		return '♥'
	case KindMultiBall:
		return 'M'
	default:
		return '?'
	}
}

// Color returns the display colour for a power-up kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindExtend:
		return core.ColorBlue
	case KindShrink:
		return core.ColorRed
	case KindSpeedUp:
		return core.ColorYellow
	case KindExtraLife:
		return core.ColorGreen
	case KindMultiBall:
		return core.ColorPurple
	default:
		return core.ColorDefault
	}
}

// weights lists the spawn weights in fixed kind order.
func weights(c config.PowerUpChances) []struct {
	Kind   Kind
	Weight float64
} {
	return []struct {
		Kind   Kind
		Weight float64
	}{
		{KindExtend, c.Extend},
		{KindShrink, c.Shrink},
		{KindSpeedUp, c.SpeedUp},
		{KindExtraLife, c.ExtraLife},
		{KindMultiBall, c.MultiBall},
	}
}

// RollKind selects a kind by weighted random draw. Weights are relative and
// need not sum to one.
func RollKind(rng Rand, c config.PowerUpChances) Kind {
	ws := weights(c)
	total := c.Total()
	if total <= 0 {
		return KindExtend
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	last := KindExtend
	for _, w := range ws {
		if w.Weight <= 0 {
			continue
		}
		cumulative += w.Weight
		last = w.Kind
		if roll < cumulative {
			return w.Kind
		}
	}
	// Float rounding can leave roll just above the running sum.
	return last
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Kind  Kind
	Box   core.Box
	Speed float64
}

// MaybeSpawn rolls for a power-up at a destroyed brick's center. A spawn
// happens when the roll falls below the sum of all chances.
func MaybeSpawn(rng Rand, cfg config.PowerUpConfig, cx, cy float64) (*PowerUp, bool) {
	if rng.Float64() >= cfg.Chances.Total() {
		return nil, false
	}
	return &PowerUp{
		Kind:  RollKind(rng, cfg.Chances),
		Box:   core.BoxAround(cx, cy, cfg.Size, cfg.Size),
		Speed: cfg.FallSpeed,
	}, true
}

// Tick moves the power-up straight down.
func (p *PowerUp) Tick() {
	p.Box.Y += p.Speed
}

// Color returns the display colour.
func (p *PowerUp) Color() core.Color {
	return p.Kind.Color()
}

// Missed reports whether the power-up has fallen past the field bottom.
func (p *PowerUp) Missed(fieldH float64) bool {
	return p.Box.Top() > fieldH
}
