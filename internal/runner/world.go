// Package runner implements the endless-runner simulation: player physics,
// obstacle spawning, collision and scoring, difficulty progression and the
// session state machine. It has no terminal or storage dependencies; the
// platform drives it with Advance and renders its Snapshot.
package runner

import "github.com/vovakirdan/dinodash/internal/config"

// World holds the scrolling playfield parameters.
// Invariant: 0 < Speed <= MaxSpeed, and Speed never decreases during a run.
type World struct {
	Width        float64
	Height       float64
	GroundY      float64
	Speed        float64
	MaxSpeed     float64
	Acceleration float64
	Gravity      float64
	SpawnEvery   float64
}

// NewWorld creates a world at its starting speed.
func NewWorld(cfg config.WorldConfig) World {
	return World{
		Width:        cfg.Width,
		Height:       cfg.Height,
		GroundY:      cfg.GroundY(),
		Speed:        cfg.StartSpeed,
		MaxSpeed:     cfg.MaxSpeed,
		Acceleration: cfg.Acceleration,
		Gravity:      cfg.Gravity,
		SpawnEvery:   cfg.SpawnEvery,
	}
}

// Ramp raises the scroll speed linearly, clamped at MaxSpeed.
func (w *World) Ramp(dt float64) {
	w.Speed = min(w.MaxSpeed, w.Speed+dt*w.Acceleration)
}
