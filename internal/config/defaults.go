package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be decoded.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Speed:        8,
			BottomOffset: 40,
			MinWidth:     50,
			MaxWidth:     200,
			MaxSpeed:     16,
		},
		Ball: BallConfig{
			Radius: 5,
			Speed:  5,
		},
		Bricks: BrickConfig{
			Width:   80,
			Height:  30,
			Rows:    5,
			Columns: 8,
			GapX:    2,
			GapY:    5,
			Top:     50,
		},
		PowerUps: PowerUpConfig{
			Size:      20,
			FallSpeed: 3,
			Duration:  600, // 10 seconds at 60fps
			Extend:    1.5,
			Shrink:    0.75,
			SpeedUp:   1.5,
			Chances: PowerUpChances{
				Extend:    0.15,
				Shrink:    0.20,
				SpeedUp:   0.10,
				ExtraLife: 0.05,
				MultiBall: 0.08,
			},
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
