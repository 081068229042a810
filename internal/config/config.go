// Package config provides the immutable configuration block for a
// brick-breaker round: field geometry, entity sizes and speeds, power-up
// tuning and lives. Values are loaded from YAML or TOML and validated
// before a round starts.
package config

// Collision limits shared by validation and the simulation.
const (
	// ImpactThreshold is how far (in field units) a ball edge may pass the
	// opposing box edge and still count as striking that side.
	ImpactThreshold = 10.0

	// MaxCloneFactor is the largest per-axis velocity scale a multi-ball
	// clone receives.
	MaxCloneFactor = 1.2
)

// Fixed grid sizes of the shaped layouts. Classic and Pyramid use the
// configured rows and columns instead.
const (
	DiamondSize     = 7
	FortressRows    = 6
	FortressColumns = 8
)

// BreakoutConfig contains all configuration for a round.
// All distances are in field units, all speeds in field units per tick.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks" toml:"bricks"`
	PowerUps PowerUpConfig  `yaml:"powerups" toml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
}

// FieldConfig defines the playing field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the paddle and the bounds power-ups may push it to.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from field bottom to paddle top
	MinWidth     float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth     float64 `yaml:"max_width" toml:"max_width"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`
}

// BallConfig defines ball size and launch speed.
type BallConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Per-axis speed at launch
}

// BrickConfig defines the brick grid used by the level generator.
type BrickConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Rows    int     `yaml:"rows" toml:"rows"`
	Columns int     `yaml:"columns" toml:"columns"`
	GapX    float64 `yaml:"gap_x" toml:"gap_x"`
	GapY    float64 `yaml:"gap_y" toml:"gap_y"`
	Top     float64 `yaml:"top" toml:"top"`
}

// PowerUpConfig defines falling power-ups and their effects.
type PowerUpConfig struct {
	Size      float64        `yaml:"size" toml:"size"`
	FallSpeed float64        `yaml:"fall_speed" toml:"fall_speed"`
	Duration  int            `yaml:"duration" toml:"duration"` // Ticks a paddle effect lasts
	Extend    float64        `yaml:"extend" toml:"extend"`     // Width multiplier
	Shrink    float64        `yaml:"shrink" toml:"shrink"`     // Width multiplier
	SpeedUp   float64        `yaml:"speed_up" toml:"speed_up"` // Paddle speed multiplier
	Chances   PowerUpChances `yaml:"chances" toml:"chances"`
}

// PowerUpChances holds the per-kind spawn weights.
// Their sum is the probability that a destroyed brick drops anything.
type PowerUpChances struct {
	Extend    float64 `yaml:"extend" toml:"extend"`
	Shrink    float64 `yaml:"shrink" toml:"shrink"`
	SpeedUp   float64 `yaml:"speed_up" toml:"speed_up"`
	ExtraLife float64 `yaml:"extra_life" toml:"extra_life"`
	MultiBall float64 `yaml:"multi_ball" toml:"multi_ball"`
}

// Total returns the sum of all weights.
func (c PowerUpChances) Total() float64 {
	return c.Extend + c.Shrink + c.SpeedUp + c.ExtraLife + c.MultiBall
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// PaddleY returns the y-coordinate of the paddle's top edge.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Field.Height - c.Paddle.BottomOffset
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
