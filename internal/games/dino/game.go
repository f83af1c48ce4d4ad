// Package dino adapts the runner simulation to the terminal: it maps input
// actions onto session requests, feeds frame time into the simulation and
// draws snapshots into a core.Screen.
package dino

import (
	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/runner"
)

// newBestFlash is how long the HUD highlights a new best score.
const newBestFlash = 1.5

// Game implements the Mini Dino Dash presentation adapter.
type Game struct {
	session *runner.Session
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig

	scroll    float64 // World pixels scrolled this run, drives ground texture and legs
	bestFlash float64 // Seconds of new-best highlight left
	jumps     int     // Jumps this run
}

// New creates a game around a fresh session. The runtime seed is applied
// before opts, so an explicit runner.WithSeed wins.
func New(cfg config.RunnerConfig, rt core.RuntimeConfig, opts ...runner.Option) *Game {
	all := make([]runner.Option, 0, len(opts)+1)
	if rt.Seed != 0 {
		all = append(all, runner.WithSeed(rt.Seed))
	}
	all = append(all, opts...)

	return &Game{
		session: runner.NewSession(cfg, all...),
		cfg:     cfg,
		runtime: rt,
	}
}

// ID returns the identifier used for logs and storage.
func (g *Game) ID() string {
	return "dinodash"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mini Dino Dash"
}

// Session exposes the underlying simulation.
func (g *Game) Session() *runner.Session {
	return g.session
}

// Step applies this frame's input and advances the simulation by dt seconds.
// A frame carrying pause ignores jump, whichever way the pause toggles.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch {
	case in.Has(core.ActionPause):
		g.session.RequestPause()
	case in.Has(core.ActionJump):
		g.session.RequestJump()
	}

	g.session.Advance(dt)
	if g.session.Phase() == runner.PhaseRunning && dt > 0 {
		g.scroll += g.session.Speed() * dt
	}
	g.bestFlash = max(0, g.bestFlash-max(dt, 0))

	result := core.StepResult{}
	for _, e := range g.session.DrainEvents() {
		switch e.Kind {
		case runner.EventStarted:
			g.scroll = 0
			g.jumps = 0
			g.bestFlash = 0
		case runner.EventJumped:
			g.jumps++
		case runner.EventCollision:
			result.RunEnded = true
		case runner.EventNewBest:
			g.bestFlash = newBestFlash
		case runner.EventPaused, runner.EventResumed, runner.EventObstacleCleared:
		}
	}

	result.State = g.State()
	return result
}

// State returns the summary the frame driver needs.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		Started:  phase != runner.PhaseNotStarted,
		GameOver: phase == runner.PhaseOver,
		Paused:   phase == runner.PhasePaused,
	}
}

// Jumps returns the number of jumps in the current run.
func (g *Game) Jumps() int {
	return g.jumps
}

// RunSummary describes the run in progress or the one that just ended.
type RunSummary struct {
	Score   int
	Cleared int
	Jumps   int
	Elapsed float64 // Seconds of running time
}

// Summary returns the current run's numbers.
func (g *Game) Summary() RunSummary {
	snap := g.session.Snapshot()
	return RunSummary{
		Score:   snap.Score,
		Cleared: snap.Cleared,
		Jumps:   g.jumps,
		Elapsed: snap.Elapsed,
	}
}
