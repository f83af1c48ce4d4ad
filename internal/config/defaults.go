package config

import (
	_ "embed"
)

//go:embed defaults/dinodash.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/dinodash.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        900,
			Height:       300,
			GroundOffset: 38,
			StartSpeed:   330,
			MaxSpeed:     660,
			Acceleration: 7.5,
			Gravity:      2050,
			SpawnEvery:   1.2,
		},
		Player: PlayerConfig{
			X:         70,
			Width:     44,
			Height:    48,
			JumpForce: 760,
		},
		Spawn: SpawnConfig{
			MinInterval:    0.45,
			ScoreDivisor:   3500,
			FlyingMinScore: 800,
			FlyingChance:   0.28,
			GroundWidth:    Range{Min: 16, Max: 38},
			GroundHeight:   Range{Min: 24, Max: 64},
			FlyingWidth:    Range{Min: 30, Max: 44},
			FlyingHeight:   Range{Min: 16, Max: 30},
			FlyingLift:     Range{Min: 58, Max: 92},
		},
		Scoring: ScoringConfig{
			Rate:        0.09,
			GroundBonus: 10,
			FlyingBonus: 14,
		},
		Hitbox: HitboxConfig{
			InsetX:  8,
			InsetY:  8,
			ShrinkW: 14,
			ShrinkH: 10,
		},
		Ambient: AmbientConfig{
			Clouds:          6,
			SparklesPerJump: 6,
			ShakeDuration:   0.28,
		},
		Frame: FrameConfig{
			MaxStep: 0.033,
		},
		Store: StoreConfig{
			Key: "miniDinoBest",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
