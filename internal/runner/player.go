package runner

import (
	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
)

// Player is the runner character. X never changes; Y grows downward.
// Invariant: Y+H <= ground, and Grounded iff Y+H == ground and VY == 0.
type Player struct {
	X, Y      float64
	W, H      float64
	VY        float64
	JumpForce float64
	Grounded  bool
}

// NewPlayer creates a player standing on the ground line.
func NewPlayer(cfg config.PlayerConfig, groundY float64) Player {
	p := Player{
		X:         cfg.X,
		W:         cfg.Width,
		H:         cfg.Height,
		JumpForce: cfg.JumpForce,
	}
	p.PlaceOnGround(groundY)
	return p
}

// Box returns the full sprite box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// PlaceOnGround puts the player at rest on the ground line.
func (p *Player) PlaceOnGround(groundY float64) {
	p.Y = groundY - p.H
	p.VY = 0
	p.Grounded = true
}

// ApplyGravity accelerates the player downward.
func (p *Player) ApplyGravity(gravity, dt float64) {
	p.VY += gravity * dt
}

// Integrate moves the player by its velocity.
func (p *Player) Integrate(dt float64) {
	p.Y += p.VY * dt
}

// ClampToGround lands the player when it has sunk below the ground line.
func (p *Player) ClampToGround(groundY float64) {
	if p.Y > groundY-p.H {
		p.PlaceOnGround(groundY)
	}
}

// Jump launches the player if it is standing on the ground.
// It reports whether a jump happened.
func (p *Player) Jump() bool {
	if !p.Grounded {
		return false
	}
	p.VY = -p.JumpForce
	p.Grounded = false
	return true
}
