package breakout

import (
	"math"

	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
)

// Collision tuning.
const (
	// ImpactThreshold is how close (in field units) a ball edge must be to
	// the opposing box edge for that side to count as struck. Validation
	// keeps every ball slower than this per tick.
	ImpactThreshold = config.ImpactThreshold

	// MaxBounceAngle is the largest deflection from vertical a paddle
	// bounce can impart, reached at the paddle's edge.
	MaxBounceAngle = math.Pi / 3
)

// Impact names the ball edge that struck a box.
type Impact int

const (
	ImpactNone   Impact = iota
	ImpactBottom        // Ball moving down onto the box top
	ImpactTop           // Ball moving up into the box bottom
	ImpactRight         // Ball moving right into the box left
	ImpactLeft          // Ball moving left into the box right
)

// String returns the impact name.
func (i Impact) String() string {
	switch i {
	case ImpactBottom:
		return "bottom"
	case ImpactTop:
		return "top"
	case ImpactRight:
		return "right"
	case ImpactLeft:
		return "left"
	default:
		return "none"
	}
}

// Vertical reports whether the impact flips the vertical velocity.
func (i Impact) Vertical() bool {
	return i == ImpactBottom || i == ImpactTop
}

// ImpactOf classifies a hit between a ball box moving at (dx, dy) and a
// target box. Sides are checked bottom, top, right, left and the first
// within ImpactThreshold wins, so a corner hit resolves to one axis only.
// This is an approximation of reflection, not a physical one.
// Returns ImpactNone when the boxes do not overlap.
func ImpactOf(ball core.Box, dx, dy float64, target core.Box) Impact {
	if !ball.Overlaps(target) {
		return ImpactNone
	}
	switch {
	case math.Abs(ball.Bottom()-target.Top()) < ImpactThreshold && dy > 0:
		return ImpactBottom
	case math.Abs(ball.Top()-target.Bottom()) < ImpactThreshold && dy < 0:
		return ImpactTop
	case math.Abs(ball.Right()-target.Left()) < ImpactThreshold && dx > 0:
		return ImpactRight
	case math.Abs(ball.Left()-target.Right()) < ImpactThreshold && dx < 0:
		return ImpactLeft
	default:
		return ImpactNone
	}
}

// ResolveBounce flips the ball's velocity component orthogonal to the
// struck side. It reports whether the ball overlapped the box at all.
func ResolveBounce(b *Ball, target core.Box) bool {
	box := b.Box()
	if !box.Overlaps(target) {
		return false
	}
	switch ImpactOf(box, b.DX, b.DY, target) {
	case ImpactBottom, ImpactTop:
		b.DY = -b.DY
	case ImpactRight, ImpactLeft:
		b.DX = -b.DX
	}
	return true
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	timer         int // Ticks left on the active effect, 0 = none

	baseWidth float64
	baseSpeed float64
	minWidth  float64
	maxWidth  float64
	maxSpeed  float64
	fieldW    float64
	pu        config.PowerUpConfig
}

// NewPaddle creates a paddle centered horizontally at its configured height.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	pc := cfg.Paddle
	return &Paddle{
		X:         (cfg.Field.Width - pc.Width) / 2,
		Y:         cfg.PaddleY(),
		Width:     pc.Width,
		Height:    pc.Height,
		Speed:     pc.Speed,
		baseWidth: pc.Width,
		baseSpeed: pc.Speed,
		minWidth:  pc.MinWidth,
		maxWidth:  pc.MaxWidth,
		maxSpeed:  pc.MaxSpeed,
		fieldW:    cfg.Field.Width,
		pu:        cfg.PowerUps,
	}
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// EffectTicks returns the ticks left on the active paddle effect.
func (p *Paddle) EffectTicks() int {
	return p.timer
}

// Move shifts the paddle by dir * speed, clamped to the field.
func (p *Paddle) Move(dir int) {
	dir = core.Clamp(dir, -1, 1)
	p.X += float64(dir) * p.Speed
	p.clamp()
}

// Tick counts down the active effect and restores the default width and
// speed when it expires.
func (p *Paddle) Tick() {
	if p.timer <= 0 {
		return
	}
	p.timer--
	if p.timer == 0 {
		p.Width = p.baseWidth
		p.Speed = p.baseSpeed
		p.clamp()
	}
}

// ApplyPowerUp applies a paddle effect and (re)starts the effect timer.
// It reports false for kinds that do not act on the paddle.
func (p *Paddle) ApplyPowerUp(kind Kind) bool {
	switch kind {
	case KindExtend:
		p.Width = math.Min(p.Width*p.pu.Extend, p.maxWidth)
	case KindShrink:
		p.Width = math.Max(p.Width*p.pu.Shrink, p.minWidth)
	case KindSpeedUp:
		p.Speed = math.Min(p.Speed*p.pu.SpeedUp, p.maxSpeed)
	default:
		return false
	}
	p.timer = p.pu.Duration
	p.clamp()
	return true
}

func (p *Paddle) clamp() {
	p.Width = core.ClampF(p.Width, p.minWidth, p.maxWidth)
	p.X = core.ClampF(p.X, 0, p.fieldW-p.Width)
}

// Ball is a moving (or resting) ball. X, Y is the center.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	InPlay bool // False while riding the paddle before launch
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.BoxAround(b.X, b.Y, 2*b.Radius, 2*b.Radius)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// limitSpeed scales the velocity down so the speed does not exceed limit.
func (b *Ball) limitSpeed(limit float64) {
	if s := b.Speed(); s > limit {
		b.DX *= limit / s
		b.DY *= limit / s
	}
}

// Rest places the ball on top of the paddle center.
func (b *Ball) Rest(p *Paddle) {
	b.X = p.CenterX()
	b.Y = p.Y - b.Radius
}

// Tick advances the ball one step. A resting ball rides the paddle; a ball
// in play moves and bounces off the side and top walls. Wall bounces only
// flip signs, so speed is conserved.
func (b *Ball) Tick(p *Paddle, fieldW float64) {
	if !b.InPlay {
		b.Rest(p)
		return
	}
	b.X += b.DX
	b.Y += b.DY

	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
	} else if b.X+b.Radius >= fieldW {
		b.X = fieldW - b.Radius
		b.DX = -math.Abs(b.DX)
	}
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
	}
}

// Out reports whether the ball has fallen entirely below the field.
func (b *Ball) Out(fieldH float64) bool {
	return b.Y-b.Radius > fieldH
}

var cloneFactors = [...]float64{0.8, 1.0, config.MaxCloneFactor}

// Clone returns an in-play copy of the ball with each velocity component
// scaled by an independent random factor from {0.8, 1.0, 1.2}.
func (b *Ball) Clone(rng Rand) *Ball {
	c := *b
	c.DX *= cloneFactors[rng.IntN(len(cloneFactors))]
	c.DY *= cloneFactors[rng.IntN(len(cloneFactors))]
	c.InPlay = true
	return &c
}

// PaddleBounce sends the ball off the paddle at the given speed. The angle
// from vertical grows linearly with the hit offset from the paddle center,
// up to MaxBounceAngle at the edges. The ball always leaves upward and is
// lifted onto the paddle top, even when it struck the underside.
func PaddleBounce(b *Ball, p *Paddle, speed float64) {
	offset := core.ClampF((b.X-p.CenterX())/(p.Width/2), -1, 1)
	angle := offset * MaxBounceAngle
	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
	b.Y = p.Y - b.Radius
}
