package dino

import (
	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/runner"
)

// Autopilot plays the game headlessly. It jumps when the nearest threatening
// obstacle is about to reach the player hitbox.
type Autopilot struct {
	hitbox config.HitboxConfig
	lead   float64 // Seconds of warning before contact that trigger a jump
}

// NewAutopilot creates an autopilot for games built with cfg.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{hitbox: cfg.Hitbox, lead: 0.2}
}

// Decide returns the action to take for the given state. It starts a fresh
// game but leaves finished runs alone.
func (a *Autopilot) Decide(snap runner.Snapshot) core.Action {
	switch snap.Phase {
	case runner.PhaseNotStarted:
		return core.ActionJump
	case runner.PhasePaused:
		return core.ActionPause
	case runner.PhaseOver:
		return core.ActionNone
	case runner.PhaseRunning:
	}

	if !snap.Player.Grounded {
		return core.ActionNone
	}

	hb := runner.Hitbox(snap.Player, a.hitbox)
	for _, o := range snap.Obstacles {
		// Flying obstacles high enough to pass over the player are ignored.
		if o.Box().Bottom() <= hb.Y {
			continue
		}
		gap := o.X - hb.Right()
		if gap < 0 {
			continue
		}
		if gap <= snap.World.Speed*a.lead {
			return core.ActionJump
		}
		return core.ActionNone
	}
	return core.ActionNone
}

// Frame wraps Decide into an input frame.
func (a *Autopilot) Frame(snap runner.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a.Decide(snap))
	return in
}
