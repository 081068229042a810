package breakout

import (
	"testing"

	"github.com/rosasor/brick-breaker/internal/config"
)

func TestRollKind(t *testing.T) {
	chances := config.DefaultBreakoutConfig().PowerUps.Chances // Total 0.58

	tests := []struct {
		roll float64
		want Kind
	}{
		{0.0, KindExtend},
		{0.25, KindExtend},    // 0.145 < 0.15
		{0.30, KindShrink},    // 0.174
		{0.65, KindSpeedUp},   // 0.377
		{0.80, KindExtraLife}, // 0.464
		{0.95, KindMultiBall}, // 0.551
		{0.999999, KindMultiBall},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{tc.roll}}
			if got := RollKind(rng, chances); got != tc.want {
				t.Errorf("RollKind(%v) = %s, expected %s", tc.roll, got, tc.want)
			}
		})
	}
}

func TestRollKindSkipsZeroWeights(t *testing.T) {
	chances := config.PowerUpChances{MultiBall: 0.3}
	for _, roll := range []float64{0, 0.5, 0.99} {
		rng := &scriptedRand{floats: []float64{roll}}
		if got := RollKind(rng, chances); got != KindMultiBall {
			t.Errorf("RollKind(%v) = %s, expected MultiBall", roll, got)
		}
	}
}

func TestRollKindDistribution(t *testing.T) {
	chances := config.DefaultBreakoutConfig().PowerUps.Chances
	rng := NewRand(42)
	counts := make(map[Kind]int)
	const n = 20000
	for range n {
		counts[RollKind(rng, chances)]++
	}

	// Shrink (0.20) must come up more often than ExtraLife (0.05)
	if counts[KindShrink] <= counts[KindExtraLife]*2 {
		t.Errorf("weights not respected: %v", counts)
	}
	for _, k := range []Kind{KindExtend, KindShrink, KindSpeedUp, KindExtraLife, KindMultiBall} {
		if counts[k] == 0 {
			t.Errorf("%s never drawn", k)
		}
	}
}

func TestMaybeSpawn(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().PowerUps

	t.Run("forced spawn", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.01, 0.0}}
		p, ok := MaybeSpawn(rng, cfg, 100, 200)
		if !ok {
			t.Fatal("roll 0.01 should spawn")
		}
		cx, cy := p.Box.Center()
		if cx != 100 || cy != 200 {
			t.Errorf("spawned at (%v, %v), expected (100, 200)", cx, cy)
		}
		if p.Box.W != cfg.Size || p.Speed != cfg.FallSpeed || p.Kind != KindExtend {
			t.Errorf("power-up = %+v", p)
		}
	})

	t.Run("roll above total", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.59}}
		if _, ok := MaybeSpawn(rng, cfg, 100, 200); ok {
			t.Error("roll above the total should not spawn")
		}
	})
}

func TestPowerUpFalls(t *testing.T) {
	p := &PowerUp{Kind: KindExtraLife, Speed: 3}
	p.Box.Y = 590
	p.Box.H = 20

	p.Tick()
	if p.Box.Y != 593 || p.Box.X != 0 {
		t.Errorf("after tick box = %+v", p.Box)
	}
	if p.Missed(600) {
		t.Error("power-up still in the field should not be missed")
	}
	for range 3 {
		p.Tick()
	}
	if !p.Missed(600) {
		t.Errorf("power-up at y=%v should be missed", p.Box.Y)
	}
}

func TestKindColors(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range []Kind{KindExtend, KindShrink, KindSpeedUp, KindExtraLife, KindMultiBall} {
		c := k.Color().String()
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share colour %s", prev, k, c)
		}
		seen[c] = k
	}
}
