package breakout

import "github.com/rosasor/brick-breaker/internal/core"

// Autopilot returns the input a simple tracking player would give: launch
// when serving, otherwise steer the paddle under the lowest descending ball.
// It drives headless runs and long determinism tests.
func Autopilot(r *Round) Input {
	if r.State() == StateServing {
		return Input{Launch: true}
	}

	var target *Ball
	for _, b := range r.Balls() {
		if !b.InPlay || b.DY <= 0 {
			continue
		}
		if target == nil || b.Y > target.Y {
			target = b
		}
	}
	if target == nil {
		return Input{}
	}

	p := r.Paddle()
	// Dead zone avoids jitter when the ball is already over the paddle
	deadZone := p.Width / 4
	switch diff := target.X - p.CenterX(); {
	case diff < -deadZone:
		return Input{Move: -1}
	case diff > deadZone:
		return Input{Move: 1}
	default:
		return Input{}
	}
}

// Frame converts the input into the action frame a Session steps with.
func (in Input) Frame() core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case in.Move < 0:
		f.Set(core.ActionLeft)
	case in.Move > 0:
		f.Set(core.ActionRight)
	}
	if in.Launch {
		f.Set(core.ActionLaunch)
	}
	return f
}
