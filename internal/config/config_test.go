package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDefaultGroundY(t *testing.T) {
	if got := DefaultRunnerConfig().World.GroundY(); got != 262 {
		t.Errorf("GroundY() = %v, expected 262", got)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  max_speed: 800\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.World.MaxSpeed != 800 {
		t.Errorf("MaxSpeed = %v, expected 800", cfg.World.MaxSpeed)
	}
	if cfg.World.StartSpeed != 330 {
		t.Errorf("StartSpeed = %v, expected default 330", cfg.World.StartSpeed)
	}
	if cfg.Spawn.FlyingChance != 0.28 {
		t.Errorf("FlyingChance = %v, expected default 0.28", cfg.Spawn.FlyingChance)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"speed above max", "world:\n  start_speed: 700\n", "max_speed"},
		{"negative gravity", "world:\n  gravity: -1\n", "gravity"},
		{"chance above one", "spawn:\n  flying_chance: 1.5\n", "flying_chance"},
		{"empty range", "spawn:\n  ground_height: {min: 30, max: 10}\n", "ground_height"},
		{"no store key", "store:\n  key: \"\"\n", "store"},
		{"hitbox swallowed", "hitbox:\n  shrink_w: 44\n", "hitbox"},
		{"malformed", "world: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  spawn_every: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.SpawnEvery != 2 {
		t.Errorf("SpawnEvery = %v, expected 2", cfg.World.SpawnEvery)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("Load without files should return the defaults")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("player:\n  jump_force: 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.JumpForce != 800 {
		t.Errorf("JumpForce = %v, expected 800 from ./configs", cfg.Player.JumpForce)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultRunnerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultRunnerConfig() {
		t.Error("normal preset should not change the config")
	}

	fixed := DefaultRunnerConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.World.Acceleration != 0 || fixed.World.MaxSpeed != fixed.World.StartSpeed {
		t.Errorf("fixed preset should freeze speed, got %+v", fixed.World)
	}

	easy := DefaultRunnerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultRunnerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if !(easy.World.StartSpeed < normal.World.StartSpeed && normal.World.StartSpeed < hard.World.StartSpeed) {
		t.Errorf("start speeds should order easy < normal < hard: %v %v %v",
			easy.World.StartSpeed, normal.World.StartSpeed, hard.World.StartSpeed)
	}

	for _, p := range Presets() {
		cfg := DefaultRunnerConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", p, err)
		}
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 24, Max: 64}
	if r.Lerp(0) != 24 {
		t.Errorf("Lerp(0) = %v, expected 24", r.Lerp(0))
	}
	if r.Lerp(0.5) != 44 {
		t.Errorf("Lerp(0.5) = %v, expected 44", r.Lerp(0.5))
	}
}
