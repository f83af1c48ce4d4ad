package runner

import "github.com/vovakirdan/dinodash/internal/config"

// RandSource is the uniform [0,1) generator used for procedural content.
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ObstacleSpawner decides when obstacles appear.
// Tick returns at most one obstacle per call.
type ObstacleSpawner interface {
	Tick(dt float64, w World, score int) (Obstacle, bool)
	Reset()
}

// Spawner is the default obstacle policy: a clock compared against a spawn
// interval that shrinks with score, and a flying chance unlocked by score.
type Spawner struct {
	cfg   config.SpawnConfig
	rng   RandSource
	clock float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SpawnConfig, rng RandSource) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Interval returns the current spawn interval:
// max(MinInterval, base - score/ScoreDivisor).
func (s *Spawner) Interval(base float64, score int) float64 {
	return max(s.cfg.MinInterval, base-float64(score)/s.cfg.ScoreDivisor)
}

// Clock returns the time accumulated since the last spawn.
func (s *Spawner) Clock() float64 {
	return s.clock
}

// Reset zeroes the spawn clock.
func (s *Spawner) Reset() {
	s.clock = 0
}

// Tick advances the clock and emits one obstacle once the interval elapses.
func (s *Spawner) Tick(dt float64, w World, score int) (Obstacle, bool) {
	s.clock += dt
	if s.clock < s.Interval(w.SpawnEvery, score) {
		return Obstacle{}, false
	}
	s.clock = 0
	return s.spawn(w, score), true
}

// spawn builds an obstacle just beyond the right edge.
func (s *Spawner) spawn(w World, score int) Obstacle {
	chance := 0.0
	if score >= s.cfg.FlyingMinScore {
		chance = s.cfg.FlyingChance
	}
	flying := s.rng.Float64() < chance

	if flying {
		h := s.cfg.FlyingHeight.Lerp(s.rng.Float64())
		wd := s.cfg.FlyingWidth.Lerp(s.rng.Float64())
		lift := s.cfg.FlyingLift.Lerp(s.rng.Float64())
		return Obstacle{X: w.Width + wd, Y: w.GroundY - lift, W: wd, H: h, Kind: KindFlying}
	}

	h := s.cfg.GroundHeight.Lerp(s.rng.Float64())
	wd := s.cfg.GroundWidth.Lerp(s.rng.Float64())
	return Obstacle{X: w.Width + wd, Y: w.GroundY - h, W: wd, H: h, Kind: KindGround}
}
