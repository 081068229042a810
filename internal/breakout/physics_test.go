package breakout

import (
	"math"
	"testing"

	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
)

func TestImpactOf(t *testing.T) {
	target := core.NewBox(100, 100, 80, 30)

	tests := []struct {
		name   string
		ball   core.Box
		dx, dy float64
		want   Impact
	}{
		{"from above", core.NewBox(130, 92, 10, 10), 0, 5, ImpactBottom},
		{"from below", core.NewBox(130, 128, 10, 10), 0, -5, ImpactTop},
		{"from left", core.NewBox(92, 110, 10, 10), 5, 0, ImpactRight},
		{"from right", core.NewBox(178, 110, 10, 10), -5, 0, ImpactLeft},
		{"corner prefers vertical", core.NewBox(92, 92, 10, 10), 5, 5, ImpactBottom},
		{"moving away vertically", core.NewBox(130, 92, 10, 10), 0, -5, ImpactNone},
		{"no overlap", core.NewBox(0, 0, 10, 10), 5, 5, ImpactNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImpactOf(tc.ball, tc.dx, tc.dy, target); got != tc.want {
				t.Errorf("ImpactOf() = %s, expected %s", got, tc.want)
			}
		})
	}
}

func TestResolveBounce(t *testing.T) {
	target := core.NewBox(100, 100, 80, 30)

	b := &Ball{X: 135, Y: 97, DX: 3, DY: 5, Radius: 5}
	if !ResolveBounce(b, target) {
		t.Fatal("expected overlap")
	}
	if b.DX != 3 || b.DY != -5 {
		t.Errorf("velocity = (%v, %v), expected (3, -5)", b.DX, b.DY)
	}

	far := &Ball{X: 10, Y: 10, DX: 3, DY: 5, Radius: 5}
	if ResolveBounce(far, target) {
		t.Error("ResolveBounce should report no overlap")
	}
	if far.DX != 3 || far.DY != 5 {
		t.Error("ResolveBounce changed velocity without overlap")
	}
}

func TestBallWallBounceConservesSpeed(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())

	tests := []struct {
		name       string
		ball       Ball
		wantDXSign float64
		wantDYSign float64
	}{
		{"left wall", Ball{X: 7, Y: 300, DX: -5, DY: 3, Radius: 5, InPlay: true}, 1, 1},
		{"right wall", Ball{X: 793, Y: 300, DX: 5, DY: -3, Radius: 5, InPlay: true}, -1, -1},
		{"top wall", Ball{X: 400, Y: 7, DX: 4, DY: -5, Radius: 5, InPlay: true}, 1, 1},
		{"top corner", Ball{X: 7, Y: 7, DX: -5, DY: -5, Radius: 5, InPlay: true}, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			before := b.Speed()
			b.Tick(p, 800)

			if !approx(b.Speed(), before) {
				t.Errorf("speed changed from %v to %v", before, b.Speed())
			}
			if math.Copysign(1, b.DX) != tc.wantDXSign || math.Copysign(1, b.DY) != tc.wantDYSign {
				t.Errorf("velocity = (%v, %v)", b.DX, b.DY)
			}
			box := b.Box()
			if box.Left() < 0 || box.Right() > 800 || box.Top() < 0 {
				t.Errorf("ball left the field: %+v", box)
			}
		})
	}
}

func TestBallRidesPaddle(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	b := &Ball{DX: 5, DY: -5, Radius: 5}

	p.Move(1)
	b.Tick(p, 800)

	if b.X != p.CenterX() || b.Y != p.Y-b.Radius {
		t.Errorf("resting ball at (%v, %v), expected (%v, %v)", b.X, b.Y, p.CenterX(), p.Y-b.Radius)
	}
	if b.Box().Overlaps(p.Box()) {
		t.Error("resting ball should sit on top of the paddle, not inside it")
	}
}

func TestBallOut(t *testing.T) {
	b := &Ball{Y: 604, Radius: 5}
	if b.Out(600) {
		t.Error("ball still touching the field should not be out")
	}
	b.Y = 606
	if !b.Out(600) {
		t.Error("ball below the field should be out")
	}
}

func TestPaddleBounceAngle(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	speed := math.Hypot(cfg.Ball.Speed, cfg.Ball.Speed)

	tests := []struct {
		name   string
		offset float64 // Relative to half width
		angle  float64
	}{
		{"center", 0, 0},
		{"right edge", 1, MaxBounceAngle},
		{"left edge", -1, -MaxBounceAngle},
		{"half right", 0.5, MaxBounceAngle / 2},
		{"beyond edge clamps", 1.4, MaxBounceAngle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(cfg)
			b := &Ball{X: p.CenterX() + tc.offset*p.Width/2, Y: p.Y, DX: 2, DY: 5, Radius: 5, InPlay: true}
			PaddleBounce(b, p, speed)

			if b.DY >= 0 {
				t.Fatalf("DY = %v, ball must leave upward", b.DY)
			}
			if got := math.Atan2(b.DX, -b.DY); !approx(got, tc.angle) {
				t.Errorf("angle = %v, expected %v", got, tc.angle)
			}
			if !approx(b.Speed(), speed) {
				t.Errorf("speed = %v, expected %v", b.Speed(), speed)
			}
		})
	}

	t.Run("center is straight up", func(t *testing.T) {
		p := NewPaddle(cfg)
		b := &Ball{X: p.CenterX(), Y: p.Y, DX: -4, DY: 5, Radius: 5, InPlay: true}
		PaddleBounce(b, p, speed)
		if b.DX != 0 {
			t.Errorf("DX = %v, expected 0", b.DX)
		}
	})
}

func TestPaddleBounceUnderside(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(cfg)
	// Ball coming up from below into the paddle's bottom edge
	b := &Ball{X: p.CenterX() + 10, Y: p.Y + p.Height + 3, DX: 1, DY: -5, Radius: 5, InPlay: true}
	if !b.Box().Overlaps(p.Box()) {
		t.Fatal("setup: ball should overlap the paddle")
	}

	PaddleBounce(b, p, 7)

	if b.DY >= 0 {
		t.Errorf("DY = %v, underside hit should still send the ball up", b.DY)
	}
	if b.Box().Overlaps(p.Box()) {
		t.Error("ball should be lifted clear of the paddle")
	}
}

func TestPaddleMoveClamps(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(cfg)

	if p.X != 350 {
		t.Errorf("initial X = %v, expected 350", p.X)
	}
	for range 100 {
		p.Move(-1)
	}
	if p.X != 0 {
		t.Errorf("X = %v after moving left, expected 0", p.X)
	}
	for range 100 {
		p.Move(1)
	}
	if p.X != cfg.Field.Width-p.Width {
		t.Errorf("X = %v after moving right, expected %v", p.X, cfg.Field.Width-p.Width)
	}

	x := p.X
	p.Move(5) // Treated as +1
	if p.X != x {
		t.Error("paddle moved past the right wall")
	}
}

func TestPaddleWidthBounds(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	t.Run("chained extends cap", func(t *testing.T) {
		p := NewPaddle(cfg)
		for range 10 {
			p.ApplyPowerUp(KindExtend)
		}
		if p.Width != 200 {
			t.Errorf("Width = %v, expected 200", p.Width)
		}
	})

	t.Run("chained shrinks floor", func(t *testing.T) {
		p := NewPaddle(cfg)
		for range 10 {
			p.ApplyPowerUp(KindShrink)
		}
		if p.Width != 50 {
			t.Errorf("Width = %v, expected 50", p.Width)
		}
	})

	t.Run("mixed sequence", func(t *testing.T) {
		p := NewPaddle(cfg)
		rng := NewRand(7)
		for range 500 {
			if rng.IntN(2) == 0 {
				p.ApplyPowerUp(KindExtend)
			} else {
				p.ApplyPowerUp(KindShrink)
			}
			p.Move(rng.IntN(3) - 1)
			if p.Width < 50 || p.Width > 200 {
				t.Fatalf("Width = %v left [50, 200]", p.Width)
			}
			if p.X < 0 || p.X+p.Width > cfg.Field.Width {
				t.Fatalf("paddle outside field: X=%v W=%v", p.X, p.Width)
			}
		}
	})
}

func TestPaddleExtendAtWallStaysInField(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(cfg)
	for range 100 {
		p.Move(1)
	}
	p.ApplyPowerUp(KindExtend)
	if p.Box().Right() > cfg.Field.Width {
		t.Errorf("paddle right edge %v beyond field", p.Box().Right())
	}
}

func TestPaddleEffectExpires(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(cfg)

	p.ApplyPowerUp(KindExtend)
	p.ApplyPowerUp(KindSpeedUp)
	if p.Width != 150 || p.Speed != 12 {
		t.Fatalf("after effects: width=%v speed=%v", p.Width, p.Speed)
	}
	if p.EffectTicks() != cfg.PowerUps.Duration {
		t.Errorf("EffectTicks() = %d, expected %d", p.EffectTicks(), cfg.PowerUps.Duration)
	}

	for range cfg.PowerUps.Duration - 1 {
		p.Tick()
	}
	if p.Width != 150 {
		t.Error("effect expired early")
	}

	p.Tick()
	if p.Width != 100 || p.Speed != 8 || p.EffectTicks() != 0 {
		t.Errorf("after expiry: width=%v speed=%v ticks=%d", p.Width, p.Speed, p.EffectTicks())
	}
}

func TestPaddleSpeedUpCap(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	for range 5 {
		p.ApplyPowerUp(KindSpeedUp)
	}
	if p.Speed != 16 {
		t.Errorf("Speed = %v, expected 16", p.Speed)
	}
}

func TestPaddleIgnoresNonPaddleKinds(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	for _, k := range []Kind{KindExtraLife, KindMultiBall} {
		if p.ApplyPowerUp(k) {
			t.Errorf("ApplyPowerUp(%s) should report false", k)
		}
	}
	if p.Width != 100 || p.Speed != 8 || p.EffectTicks() != 0 {
		t.Error("non-paddle kinds changed the paddle")
	}
}

func TestBallClone(t *testing.T) {
	b := &Ball{X: 10, Y: 20, DX: 5, DY: -5, Radius: 5}
	rng := &scriptedRand{ints: []int{0, 2}}

	c := b.Clone(rng)
	if c == b {
		t.Fatal("Clone returned the same pointer")
	}
	if !approx(c.DX, 4) || !approx(c.DY, -6) {
		t.Errorf("clone velocity = (%v, %v), expected (4, -6)", c.DX, c.DY)
	}
	if c.X != 10 || c.Y != 20 || !c.InPlay {
		t.Errorf("clone = %+v", c)
	}
	if b.InPlay {
		t.Error("Clone modified the original")
	}
}
