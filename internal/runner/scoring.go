package runner

import (
	"math"

	"github.com/vovakirdan/dinodash/internal/config"
)

// maxAccrualStep caps the points credited by a single Accrue call so that a
// pathological dt cannot overflow the score.
const maxAccrualStep = 1 << 31

// Scoring converts distance into integer points and tracks clear bonuses.
type Scoring struct {
	cfg     config.ScoringConfig
	score   int
	carry   float64 // Fractional points not yet credited, in [0,1)
	cleared int
}

// NewScoring creates a zeroed scorer.
func NewScoring(cfg config.ScoringConfig) Scoring {
	return Scoring{cfg: cfg}
}

// Score returns the integer score.
func (s *Scoring) Score() int {
	return s.score
}

// Carry returns the fractional remainder.
func (s *Scoring) Carry() float64 {
	return s.carry
}

// Cleared returns how many obstacles left the screen this run.
func (s *Scoring) Cleared() int {
	return s.cleared
}

// Reset clears score, carry and cleared count.
func (s *Scoring) Reset() {
	s.score = 0
	s.carry = 0
	s.cleared = 0
}

// Accrue credits dt*speed*Rate points. Whole points move into the score and
// the fraction carries over to the next call.
func (s *Scoring) Accrue(dt, speed float64) {
	s.carry += dt * speed * s.cfg.Rate
	if s.carry < 1 {
		return
	}
	whole := math.Floor(s.carry)
	s.carry -= whole
	s.score += int(min(whole, maxAccrualStep))
}

// Clear credits the bonus for an obstacle that scrolled off screen and
// returns the bonus.
func (s *Scoring) Clear(kind ObstacleKind) int {
	bonus := s.cfg.GroundBonus
	if kind == KindFlying {
		bonus = s.cfg.FlyingBonus
	}
	s.score += bonus
	s.cleared++
	return bonus
}
