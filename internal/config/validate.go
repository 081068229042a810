package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) for out-of-range constants.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks every constant a round depends on.
// It reports the first problem found.
func (c BreakoutConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Field.Width > 0 && c.Field.Height > 0, "field dimensions must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle dimensions must be positive"},
		{c.Paddle.Speed > 0, "paddle speed must be positive"},
		{c.Paddle.MinWidth > 0 && c.Paddle.MinWidth <= c.Paddle.MaxWidth, "paddle min_width must be in (0, max_width]"},
		{c.Paddle.Width >= c.Paddle.MinWidth && c.Paddle.Width <= c.Paddle.MaxWidth, "paddle width must be within [min_width, max_width]"},
		{c.Paddle.MaxWidth <= c.Field.Width, "paddle max_width must fit the field"},
		{c.Paddle.MaxSpeed >= c.Paddle.Speed, "paddle max_speed must be at least speed"},
		{c.Paddle.BottomOffset >= c.Paddle.Height && c.Paddle.BottomOffset < c.Field.Height, "paddle bottom_offset must be within the field and clear the paddle height"},
		{c.Ball.Radius > 0, "ball radius must be positive"},
		{c.Ball.Speed > 0, "ball speed must be positive"},
		{c.MaxBallSpeed() < ImpactThreshold, "ball speed is too high for brick hits to register"},
		{c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick dimensions must be positive"},
		{c.Bricks.Rows > 0 && c.Bricks.Columns > 0, "brick grid must have rows and columns"},
		{c.Bricks.GapX >= 0 && c.Bricks.GapY >= 0 && c.Bricks.Top >= 0, "brick gaps and top must not be negative"},
		{c.layoutWidth() <= c.Field.Width, "brick layouts are wider than the field"},
		{c.layoutBottom() < c.PaddleY(), "brick layouts reach the paddle"},
		{c.PowerUps.Size > 0 && c.PowerUps.FallSpeed > 0, "power-up size and fall_speed must be positive"},
		{c.PowerUps.Duration >= 1, "power-up duration must be at least one tick"},
		{c.PowerUps.Extend >= 1, "extend factor must be at least 1"},
		{c.PowerUps.Shrink > 0 && c.PowerUps.Shrink <= 1, "shrink factor must be in (0, 1]"},
		{c.PowerUps.SpeedUp >= 1, "speed_up factor must be at least 1"},
		{c.chancesValid(), "power-up chances must be non-negative, not all zero, and sum to at most 1"},
		{c.Gameplay.Lives >= 1, "lives must be at least 1"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

// MaxBallSpeed is the fastest a ball can move: the launch and paddle bounce
// speed, scaled by the largest multi-ball clone factor.
func (c BreakoutConfig) MaxBallSpeed() float64 {
	return math.Hypot(c.Ball.Speed, c.Ball.Speed) * MaxCloneFactor
}

// layoutWidth is the width of the widest level grid.
func (c BreakoutConfig) layoutWidth() float64 {
	n := float64(max(c.Bricks.Columns, DiamondSize, FortressColumns))
	return n*(c.Bricks.Width+c.Bricks.GapX) - c.Bricks.GapX
}

// layoutBottom is the bottom edge of the lowest brick row of any level.
func (c BreakoutConfig) layoutBottom() float64 {
	n := float64(max(c.Bricks.Rows, DiamondSize, FortressRows))
	return c.Bricks.Top + n*(c.Bricks.Height+c.Bricks.GapY) - c.Bricks.GapY
}

func (c BreakoutConfig) chancesValid() bool {
	ch := c.PowerUps.Chances
	for _, w := range []float64{ch.Extend, ch.Shrink, ch.SpeedUp, ch.ExtraLife, ch.MultiBall} {
		if w < 0 {
			return false
		}
	}
	total := ch.Total()
	return total > 0 && total <= 1
}
