package runner

import (
	"errors"

	"github.com/vovakirdan/dinodash/internal/config"
)

// seqRand replays a fixed sequence of draws, repeating the last value.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// stubSpawner emits the obstacle in next once, then nothing.
type stubSpawner struct {
	next   *Obstacle
	resets int
}

func (s *stubSpawner) Tick(float64, World, int) (Obstacle, bool) {
	if s.next == nil {
		return Obstacle{}, false
	}
	o := *s.next
	s.next = nil
	return o, true
}

func (s *stubSpawner) Reset() { s.resets++ }

// spyStore records Set calls and can fail on demand.
type spyStore struct {
	best    int
	sets    []int
	getErr  error
	setErr  error
	getCall int
}

func (s *spyStore) Get() (int, error) {
	s.getCall++
	if s.getErr != nil {
		return 0, s.getErr
	}
	return s.best, nil
}

func (s *spyStore) Set(best int) error {
	s.sets = append(s.sets, best)
	if s.setErr != nil {
		return s.setErr
	}
	s.best = best
	return nil
}

var errUnavailable = errors.New("storage unavailable")

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// blockingObstacle sits on the ground directly in front of the player hitbox.
func blockingObstacle(cfg config.RunnerConfig) *Obstacle {
	ground := cfg.World.GroundY()
	return &Obstacle{X: cfg.Player.X + 10, Y: ground - 62, W: 30, H: 62, Kind: KindGround}
}
