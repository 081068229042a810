package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Decode("breakout.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("Decode embedded: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML differs from DefaultBreakoutConfig:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestChancesTotal(t *testing.T) {
	got := DefaultBreakoutConfig().PowerUps.Chances.Total()
	if got < 0.5799 || got > 0.5801 {
		t.Errorf("Total() = %v, expected 0.58", got)
	}
}

func TestPaddleY(t *testing.T) {
	if got := DefaultBreakoutConfig().PaddleY(); got != 560 {
		t.Errorf("PaddleY() = %v, expected 560", got)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 7\nball:\n  speed: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Ball.Speed != 6 {
		t.Errorf("overrides not applied: lives=%d speed=%v", cfg.Gameplay.Lives, cfg.Ball.Speed)
	}
	// Untouched values keep their defaults
	if cfg.Paddle.Width != 100 || cfg.Bricks.Columns != 8 {
		t.Errorf("defaults lost: paddle=%v columns=%d", cfg.Paddle.Width, cfg.Bricks.Columns)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[paddle]\nwidth = 150.0\n\n[powerups.chances]\nmulti_ball = 0.2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 150 {
		t.Errorf("Paddle.Width = %v, expected 150", cfg.Paddle.Width)
	}
	if cfg.PowerUps.Chances.MultiBall != 0.2 || cfg.PowerUps.Chances.Extend != 0.15 {
		t.Errorf("chances = %+v", cfg.PowerUps.Chances)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paddle: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(bad)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("expected parse error naming the file, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(DefaultBreakoutConfig(), format)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			cfg, err := Decode("out."+format, data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if cfg != DefaultBreakoutConfig() {
				t.Errorf("round trip changed config: %+v", cfg)
			}
		})
	}

	if _, err := Encode(DefaultBreakoutConfig(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero field", func(c *BreakoutConfig) { c.Field.Width = 0 }},
		{"paddle too wide", func(c *BreakoutConfig) { c.Paddle.Width = 250 }},
		{"paddle too narrow", func(c *BreakoutConfig) { c.Paddle.Width = 40 }},
		{"min above max", func(c *BreakoutConfig) { c.Paddle.MinWidth = 300 }},
		{"max speed below speed", func(c *BreakoutConfig) { c.Paddle.MaxSpeed = 4 }},
		{"zero ball speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }},
		{"no rows", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }},
		{"grid too wide", func(c *BreakoutConfig) { c.Bricks.Columns = 20 }},
		{"fortress too wide", func(c *BreakoutConfig) { c.Bricks.Columns = 4; c.Bricks.Width = 150 }},
		{"diamond reaches paddle", func(c *BreakoutConfig) { c.Bricks.Top = 400 }},
		{"ball tunnels through bricks", func(c *BreakoutConfig) { c.Ball.Speed = 6 }},
		{"negative chance", func(c *BreakoutConfig) { c.PowerUps.Chances.Shrink = -0.1 }},
		{"all chances zero", func(c *BreakoutConfig) { c.PowerUps.Chances = PowerUpChances{} }},
		{"chances above one", func(c *BreakoutConfig) { c.PowerUps.Chances.ExtraLife = 0.9 }},
		{"zero duration", func(c *BreakoutConfig) { c.PowerUps.Duration = 0 }},
		{"shrink grows", func(c *BreakoutConfig) { c.PowerUps.Shrink = 1.2 }},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMaxBallSpeed(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultBreakoutConfig()
		ApplyPreset(&cfg, preset)
		if got := cfg.MaxBallSpeed(); got >= ImpactThreshold {
			t.Errorf("%s: MaxBallSpeed() = %.2f, expected below %.0f", preset, got, ImpactThreshold)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 3},
		{DifficultyHard, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
