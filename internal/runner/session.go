package runner

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinodash/internal/config"
)

// maxAdvance is the largest dt a single Advance call will simulate.
// Drivers clamp far below this; it only keeps arithmetic finite.
const maxAdvance = 3600.0

// Phase is the session state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithStore persists the best score through store.
func WithStore(store BestStore) Option {
	return func(s *Session) { s.store = store }
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithSpawner replaces the obstacle policy.
func WithSpawner(sp ObstacleSpawner) Option {
	return func(s *Session) { s.spawner = sp }
}

// WithSeed seeds the default spawner and the ambient scenery.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// Session owns one player's game: world, player, obstacles, scoring and the
// phase machine. It is not safe for concurrent use; each driver owns its own.
type Session struct {
	cfg    config.RunnerConfig
	seed   int64
	logger *log.Logger

	phase     Phase
	world     World
	player    Player
	obstacles []Obstacle
	spawner   ObstacleSpawner
	scoring   Scoring
	ambient   *Ambient

	best       int
	store      BestStore
	persisting bool // false once the store has failed; best stays in memory

	shake   float64
	elapsed float64
	events  []Event
}

// NewSession creates a session in PhaseNotStarted and loads the best score.
func NewSession(cfg config.RunnerConfig, opts ...Option) *Session {
	s := &Session{
		cfg:  cfg,
		seed: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.spawner == nil {
		s.spawner = NewSpawner(cfg.Spawn, rand.New(rand.NewSource(s.seed)))
	}
	if s.store == nil {
		s.store = NewMemoryStore(0)
	}

	s.ambient = NewAmbient(cfg.Ambient, cfg.World.Width, rand.New(rand.NewSource(s.seed^0x5eed)))
	s.scoring = NewScoring(cfg.Scoring)
	s.world = NewWorld(cfg.World)
	s.player = NewPlayer(cfg.Player, s.world.GroundY)
	s.loadBest()

	return s
}

func (s *Session) loadBest() {
	s.persisting = true
	best, err := s.store.Get()
	if err != nil {
		s.logger.Warn("best score unavailable, keeping it in memory", "error", err)
		s.persisting = false
		return
	}
	s.best = max(0, best)
}

// RequestStart begins the first run. It only acts in PhaseNotStarted.
func (s *Session) RequestStart() {
	if s.phase == PhaseNotStarted {
		s.begin()
	}
}

// RequestJump is the primary input: it starts the first run, restarts after
// game over, and jumps while running. Paused sessions ignore it.
func (s *Session) RequestJump() {
	switch s.phase {
	case PhaseNotStarted, PhaseOver:
		s.begin()
	case PhaseRunning:
		if s.player.Jump() {
			s.ambient.Burst(s.player)
			s.emit(Event{Kind: EventJumped, Score: s.scoring.Score()})
		}
	case PhasePaused:
	}
}

// RequestPause toggles between running and paused.
func (s *Session) RequestPause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
		s.emit(Event{Kind: EventPaused, Score: s.scoring.Score()})
		s.logger.Debug("paused", "score", s.scoring.Score())
	case PhasePaused:
		s.phase = PhaseRunning
		s.emit(Event{Kind: EventResumed, Score: s.scoring.Score()})
		s.logger.Debug("resumed", "score", s.scoring.Score())
	case PhaseNotStarted, PhaseOver:
	}
}

// Advance moves the simulation forward by dt seconds. Scenery animates in
// every phase; gameplay only advances while running. Negative or non-finite
// dt is treated as zero.
func (s *Session) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	dt = min(dt, maxAdvance)

	s.ambient.Update(dt)
	if s.shake > 0 {
		s.shake = max(0, s.shake-dt)
	}

	switch s.phase {
	case PhaseRunning:
		s.step(dt)
	case PhaseNotStarted, PhasePaused, PhaseOver:
	}
}

// step runs one gameplay tick: physics, spawning, obstacle movement,
// collision, then difficulty and score.
func (s *Session) step(dt float64) {
	s.elapsed += dt

	s.player.ApplyGravity(s.world.Gravity, dt)
	s.player.Integrate(dt)
	s.player.ClampToGround(s.world.GroundY)

	if o, ok := s.spawner.Tick(dt, s.world, s.scoring.Score()); ok {
		s.obstacles = append(s.obstacles, o)
	}

	s.moveObstacles(dt)

	if hit, ok := CheckCollisions(s.player, s.cfg.Hitbox, s.obstacles); ok {
		s.gameOver(hit)
		return
	}

	s.world.Ramp(dt)
	s.scoring.Accrue(dt, s.world.Speed)
}

// moveObstacles scrolls obstacles left and credits those that leave the screen.
func (s *Session) moveObstacles(dt float64) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= s.world.Speed * dt
		if o.OffScreen() {
			s.scoring.Clear(o.Kind)
			s.emit(Event{Kind: EventObstacleCleared, Score: s.scoring.Score(), Obstacle: o.Kind})
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}

func (s *Session) gameOver(hit CollisionEvent) {
	s.phase = PhaseOver
	s.shake = s.cfg.Ambient.ShakeDuration
	score := s.scoring.Score()
	s.emit(Event{Kind: EventCollision, Score: score, Obstacle: hit.Obstacle.Kind})
	s.logger.Info("run over", "score", score, "best", s.best, "obstacle", hit.Obstacle.Kind, "elapsed", s.elapsed)

	if score <= s.best {
		return
	}
	s.best = score
	s.emit(Event{Kind: EventNewBest, Score: score})
	if !s.persisting {
		return
	}
	if err := s.store.Set(score); err != nil {
		s.logger.Warn("cannot persist best score, keeping it in memory", "best", score, "error", err)
		s.persisting = false
	}
}

// begin performs a full reset and enters PhaseRunning.
func (s *Session) begin() {
	s.world = NewWorld(s.cfg.World)
	s.player.PlaceOnGround(s.world.GroundY)
	s.obstacles = s.obstacles[:0]
	s.spawner.Reset()
	s.scoring.Reset()
	s.ambient.ClearSparkles()
	s.shake = 0
	s.elapsed = 0

	s.phase = PhaseRunning
	s.emit(Event{Kind: EventStarted})
	s.logger.Debug("run started", "best", s.best)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.scoring.Score()
}

// Speed returns the current scroll speed in pixels per second.
func (s *Session) Speed() float64 {
	return s.world.Speed
}

// Best returns the best score known to the session.
func (s *Session) Best() int {
	return s.best
}

// Persisting reports whether the best score is still written to the store.
func (s *Session) Persisting() bool {
	return s.persisting
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
