package runner

import "github.com/vovakirdan/dinodash/internal/core"

// ObstacleKind distinguishes ground obstacles from flying ones.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindFlying
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Obstacle is a box scrolling from right to left.
type Obstacle struct {
	X, Y float64
	W, H float64
	Kind ObstacleKind
}

// Box returns the collision box.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// OffScreen reports whether the obstacle has fully left the left edge.
func (o Obstacle) OffScreen() bool {
	return o.X+o.W < 0
}
