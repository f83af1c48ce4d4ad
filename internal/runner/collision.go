package runner

import (
	"github.com/vovakirdan/dinodash/internal/config"
	"github.com/vovakirdan/dinodash/internal/core"
)

// CollisionEvent describes the first obstacle found overlapping the player.
type CollisionEvent struct {
	Index    int // Position in the obstacle slice
	Obstacle Obstacle
	Hitbox   core.Box
}

// Hitbox returns the player's collision box: the sprite box inset on the
// top-left and shrunk on the bottom-right, so grazing contact is forgiven.
func Hitbox(p Player, h config.HitboxConfig) core.Box {
	return p.Box().Inset(h.InsetX, h.InsetY, h.ShrinkW, h.ShrinkH)
}

// CheckCollisions tests the player hitbox against obstacles in order and
// stops at the first overlap.
func CheckCollisions(p Player, h config.HitboxConfig, obstacles []Obstacle) (CollisionEvent, bool) {
	hb := Hitbox(p, h)
	for i, o := range obstacles {
		if hb.Intersects(o.Box()) {
			return CollisionEvent{Index: i, Obstacle: o, Hitbox: hb}, true
		}
	}
	return CollisionEvent{}, false
}
