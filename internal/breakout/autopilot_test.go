package breakout

import (
	"testing"

	"github.com/rosasor/brick-breaker/internal/core"
)

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dir    int
		launch bool
	}{
		{"idle", Input{}, 0, false},
		{"left", Input{Move: -1}, -1, false},
		{"right", Input{Move: 3}, 1, false},
		{"launch", Input{Launch: true}, 0, true},
		{"right and launch", Input{Move: 1, Launch: true}, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.in.Frame()
			if f.Direction() != tc.dir {
				t.Errorf("Direction() = %d, expected %d", f.Direction(), tc.dir)
			}
			if f.Has(core.ActionLaunch) != tc.launch {
				t.Errorf("launch = %v, expected %v", f.Has(core.ActionLaunch), tc.launch)
			}
		})
	}
}

func TestAutopilotLaunchesWhenServing(t *testing.T) {
	r := newTestRound(t, LevelClassic, noSpawn())
	if in := Autopilot(r); !in.Launch {
		t.Error("autopilot should launch a serving ball")
	}
}

func TestAutopilotTracksDescendingBall(t *testing.T) {
	r := newTestRound(t, LevelClassic, noSpawn())
	r.Tick(Input{Launch: true})

	b := r.Balls()[0]
	p := r.Paddle()

	b.DY = 5
	b.X = p.CenterX() - p.Width
	if in := Autopilot(r); in.Move != -1 {
		t.Errorf("Move = %d, expected -1 for a ball to the left", in.Move)
	}

	b.X = p.CenterX() + p.Width
	if in := Autopilot(r); in.Move != 1 {
		t.Errorf("Move = %d, expected 1 for a ball to the right", in.Move)
	}

	b.X = p.CenterX()
	if in := Autopilot(r); in.Move != 0 {
		t.Errorf("Move = %d, expected 0 inside the dead zone", in.Move)
	}

	b.DY = -5
	b.X = p.CenterX() + p.Width
	if in := Autopilot(r); in.Move != 0 {
		t.Error("rising balls should be ignored")
	}
}

func TestAutopilotDrivesSession(t *testing.T) {
	s := newTestSession(t, ModeSingle, LevelClassic)

	for range 2000 {
		if s.State().GameOver {
			break
		}
		s.Step(Autopilot(s.Round()).Frame())
	}

	if s.Round().Ticks() == 0 {
		t.Fatal("session did not advance")
	}
	if s.State().Score == 0 {
		t.Error("autopilot should break at least one brick in 2000 ticks")
	}
}
