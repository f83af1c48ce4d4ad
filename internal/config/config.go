// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains every tunable of the runner simulation and its driver.
type RunnerConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Hitbox  HitboxConfig  `yaml:"hitbox"`
	Ambient AmbientConfig `yaml:"ambient"`
	Frame   FrameConfig   `yaml:"frame"`
	Store   StoreConfig   `yaml:"store"`
}

// WorldConfig defines the playfield and its scrolling physics.
// Distances are in world pixels, times in seconds.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from the bottom edge
	StartSpeed   float64 `yaml:"start_speed"`   // Scroll speed at the start of a run (px/s)
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"` // Speed gained per second of running
	Gravity      float64 `yaml:"gravity"`      // px/s²
	SpawnEvery   float64 `yaml:"spawn_every"`  // Baseline spawn interval
}

// GroundY returns the Y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PlayerConfig defines the runner character.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	JumpForce float64 `yaml:"jump_force"`
}

// Range is a half-open interval [Min, Max) for uniform draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps u in [0,1) onto the range.
func (r Range) Lerp(u float64) float64 {
	return r.Min + u*(r.Max-r.Min)
}

// SpawnConfig defines obstacle timing, type probability and sizes.
type SpawnConfig struct {
	MinInterval    float64 `yaml:"min_interval"`     // Floor of the spawn interval
	ScoreDivisor   float64 `yaml:"score_divisor"`    // Interval shrinks by score/ScoreDivisor
	FlyingMinScore int     `yaml:"flying_min_score"` // No flying obstacles below this score
	FlyingChance   float64 `yaml:"flying_chance"`
	GroundWidth    Range   `yaml:"ground_width"`
	GroundHeight   Range   `yaml:"ground_height"`
	FlyingWidth    Range   `yaml:"flying_width"`
	FlyingHeight   Range   `yaml:"flying_height"`
	FlyingLift     Range   `yaml:"flying_lift"` // Top edge distance above the ground line
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	Rate        float64 `yaml:"rate"` // Points per pixel scrolled
	GroundBonus int     `yaml:"ground_bonus"`
	FlyingBonus int     `yaml:"flying_bonus"`
}

// HitboxConfig shrinks the player box before collision tests.
type HitboxConfig struct {
	InsetX  float64 `yaml:"inset_x"`
	InsetY  float64 `yaml:"inset_y"`
	ShrinkW float64 `yaml:"shrink_w"`
	ShrinkH float64 `yaml:"shrink_h"`
}

// AmbientConfig defines cosmetic scenery and effects.
type AmbientConfig struct {
	Clouds          int     `yaml:"clouds"`
	SparklesPerJump int     `yaml:"sparkles_per_jump"`
	ShakeDuration   float64 `yaml:"shake_duration"`
}

// FrameConfig defines the frame driver limits.
type FrameConfig struct {
	MaxStep float64 `yaml:"max_step"` // Largest dt handed to the simulation
}

// StoreConfig defines best score persistence.
type StoreConfig struct {
	Key string `yaml:"key"`
}

// Validate reports every impossible value in the configuration.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world: size must be positive, got %gx%g", w.Width, w.Height)
	check(w.GroundOffset >= 0 && w.GroundOffset < w.Height, "world: ground_offset %g outside [0, height)", w.GroundOffset)
	check(w.StartSpeed > 0, "world: start_speed must be positive, got %g", w.StartSpeed)
	check(w.MaxSpeed >= w.StartSpeed, "world: max_speed %g below start_speed %g", w.MaxSpeed, w.StartSpeed)
	check(w.Acceleration >= 0, "world: acceleration must not be negative, got %g", w.Acceleration)
	check(w.Gravity > 0, "world: gravity must be positive, got %g", w.Gravity)
	check(w.SpawnEvery > 0, "world: spawn_every must be positive, got %g", w.SpawnEvery)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player: size must be positive, got %gx%g", p.Width, p.Height)
	check(p.Height <= w.GroundY(), "player: height %g does not fit above ground %g", p.Height, w.GroundY())
	check(p.JumpForce >= 0, "player: jump_force must not be negative, got %g", p.JumpForce)

	s := c.Spawn
	check(s.MinInterval > 0, "spawn: min_interval must be positive, got %g", s.MinInterval)
	check(s.ScoreDivisor > 0, "spawn: score_divisor must be positive, got %g", s.ScoreDivisor)
	check(s.FlyingChance >= 0 && s.FlyingChance <= 1, "spawn: flying_chance %g outside [0, 1]", s.FlyingChance)
	for name, r := range map[string]Range{
		"ground_width":  s.GroundWidth,
		"ground_height": s.GroundHeight,
		"flying_width":  s.FlyingWidth,
		"flying_height": s.FlyingHeight,
		"flying_lift":   s.FlyingLift,
	} {
		check(r.Min > 0 && r.Max >= r.Min, "spawn: %s range [%g, %g) is invalid", name, r.Min, r.Max)
	}

	check(c.Scoring.Rate >= 0, "scoring: rate must not be negative, got %g", c.Scoring.Rate)
	check(c.Scoring.GroundBonus >= 0 && c.Scoring.FlyingBonus >= 0, "scoring: bonuses must not be negative")

	h := c.Hitbox
	check(h.ShrinkW < p.Width && h.ShrinkH < p.Height, "hitbox: shrink leaves no hitbox")

	check(c.Ambient.Clouds >= 0 && c.Ambient.SparklesPerJump >= 0, "ambient: counts must not be negative")
	check(c.Ambient.ShakeDuration >= 0, "ambient: shake_duration must not be negative")
	check(c.Frame.MaxStep > 0, "frame: max_step must be positive, got %g", c.Frame.MaxStep)
	check(c.Store.Key != "", "store: key must not be empty")

	return errors.Join(errs...)
}
