package dino

import (
	"testing"

	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/runner"
)

func runningSnapshot(obstacles ...runner.Obstacle) runner.Snapshot {
	return runner.Snapshot{
		Phase:     runner.PhaseRunning,
		World:     runner.World{Width: 900, Height: 300, GroundY: 262, Speed: 330, MaxSpeed: 660},
		Player:    runner.Player{X: 70, Y: 214, W: 44, H: 48, JumpForce: 760, Grounded: true},
		Obstacles: obstacles,
	}
}

func TestAutopilotDecide(t *testing.T) {
	ap := NewAutopilot(config.DefaultRunnerConfig())

	airborne := runningSnapshot(runner.Obstacle{X: 130, Y: 222, W: 20, H: 40})
	airborne.Player.Grounded = false
	airborne.Player.VY = -300

	over := runningSnapshot()
	over.Phase = runner.PhaseOver

	notStarted := runningSnapshot()
	notStarted.Phase = runner.PhaseNotStarted

	tests := []struct {
		name string
		snap runner.Snapshot
		want core.Action
	}{
		{"not started", notStarted, core.ActionJump},
		{"over", over, core.ActionNone},
		{"empty road", runningSnapshot(), core.ActionNone},
		{"cactus close", runningSnapshot(runner.Obstacle{X: 158, Y: 222, W: 20, H: 40}), core.ActionJump},
		{"cactus far", runningSnapshot(runner.Obstacle{X: 400, Y: 222, W: 20, H: 40}), core.ActionNone},
		{"high bird", runningSnapshot(runner.Obstacle{X: 150, Y: 170, W: 40, H: 16, Kind: runner.KindFlying}), core.ActionNone},
		{"low bird", runningSnapshot(runner.Obstacle{X: 150, Y: 204, W: 40, H: 30, Kind: runner.KindFlying}), core.ActionJump},
		{"passed cactus then far one", runningSnapshot(
			runner.Obstacle{X: 60, Y: 222, W: 20, H: 40},
			runner.Obstacle{X: 500, Y: 222, W: 20, H: 40},
		), core.ActionNone},
		{"airborne", airborne, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ap.Decide(tt.snap); got != tt.want {
				t.Errorf("Decide() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotPlaysDeterministically(t *testing.T) {
	play := func() RunSummary {
		cfg := config.DefaultRunnerConfig()
		g := New(cfg, core.RuntimeConfig{Seed: 7})
		ap := NewAutopilot(cfg)
		for i := 0; i < 1500; i++ {
			res := g.Step(ap.Frame(g.Session().Snapshot()), frame)
			if res.State.GameOver {
				break
			}
		}
		return g.Summary()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.Jumps == 0 {
		t.Error("autopilot never jumped")
	}
	if a.Score == 0 {
		t.Error("autopilot run scored nothing")
	}
}
