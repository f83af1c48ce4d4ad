package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset adjusts the scroll speed curve for a preset.
// Normal leaves the configuration untouched; fixed disables the speed ramp.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	w := &cfg.World
	switch preset {
	case DifficultyEasy:
		w.StartSpeed *= 0.85
		w.MaxSpeed *= 0.85
		w.Acceleration *= 0.75
	case DifficultyHard:
		w.StartSpeed *= 1.2
		w.MaxSpeed *= 1.15
		w.Acceleration *= 1.5
	case DifficultyFixed:
		w.Acceleration = 0
		w.MaxSpeed = w.StartSpeed
	case DifficultyNormal:
	}
}
