package runner

import (
	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
)

// sparkleGravity pulls jump particles back down (px/s²).
const sparkleGravity = 260

// Cloud is a background cloud drifting left at its own speed.
type Cloud struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Sparkle is a short-lived particle emitted on jumps.
type Sparkle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
}

// Alpha returns the remaining life as a fraction in [0,1].
func (p Sparkle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Ambient animates cosmetic scenery. It runs in every phase and never
// touches gameplay state.
type Ambient struct {
	cfg      config.AmbientConfig
	width    float64
	rng      RandSource
	clouds   []Cloud
	sparkles []Sparkle
}

// NewAmbient lays out the initial cloud row across a world of the given width.
func NewAmbient(cfg config.AmbientConfig, width float64, rng RandSource) *Ambient {
	a := &Ambient{
		cfg:    cfg,
		width:  width,
		rng:    rng,
		clouds: make([]Cloud, cfg.Clouds),
	}
	for i := range a.clouds {
		a.clouds[i] = Cloud{
			X:     90 + float64(i)*150,
			Y:     25 + float64(i%3)*24,
			Size:  24 + float64(i%4)*8,
			Speed: 18 + float64(i%3)*6,
		}
	}
	return a
}

// Update drifts clouds and ages sparkles.
func (a *Ambient) Update(dt float64) {
	for i := range a.clouds {
		c := &a.clouds[i]
		c.X -= c.Speed * dt
		if c.X+c.Size*2 < 0 {
			c.X = a.width + 30
			c.Y = 16 + a.rng.Float64()*70
			c.Size = 20 + a.rng.Float64()*20
			c.Speed = 14 + a.rng.Float64()*16
		}
	}

	alive := a.sparkles[:0]
	for _, p := range a.sparkles {
		p.Life -= dt
		p.VY += sparkleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	a.sparkles = alive
}

// Burst emits the jump particles at the player's feet.
func (a *Ambient) Burst(p Player) {
	for i := 0; i < a.cfg.SparklesPerJump; i++ {
		a.sparkles = append(a.sparkles, Sparkle{
			X:       p.X + 16 + a.rng.Float64()*12,
			Y:       p.Y + p.H - 3,
			VX:      -40 + a.rng.Float64()*70,
			VY:      -70 - a.rng.Float64()*70,
			Life:    0.45 + a.rng.Float64()*0.25,
			MaxLife: 0.65,
			Size:    2 + a.rng.Float64()*2,
		})
	}
}

// ClearSparkles drops every live particle.
func (a *Ambient) ClearSparkles() {
	a.sparkles = a.sparkles[:0]
}

// Clouds returns a copy of the clouds.
func (a *Ambient) Clouds() []Cloud {
	return append([]Cloud(nil), a.clouds...)
}

// Sparkles returns a copy of the live particles.
func (a *Ambient) Sparkles() []Sparkle {
	return append([]Sparkle(nil), a.sparkles...)
}
