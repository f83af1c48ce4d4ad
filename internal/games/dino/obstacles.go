package dino

import (
	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/runner"
)

// Obstacle glyphs
const (
	CactusChar = '▓'
	CactusTop  = '▲'
	BirdBeak   = '◄'
	WingUp     = '^'
	WingDown   = 'v'
)

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o runner.Obstacle) {
	r := v.rect(o.Box())
	switch o.Kind {
	case runner.KindGround:
		drawCactus(dst, r)
	case runner.KindFlying:
		g.drawBird(dst, r)
	}
}

// drawCactus fills the cell box with a pointed top.
func drawCactus(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, CactusChar, core.ColorObstacle)
	if r.H > 1 {
		dst.DrawHLine(r.X, r.Y, r.W, CactusTop, core.ColorObstacle)
	}
}

// drawBird draws a beak facing the player and flapping wings.
func (g *Game) drawBird(dst *core.Screen, r core.Rect) {
	wing := WingUp
	if int(g.scroll/40)%2 == 1 {
		wing = WingDown
	}
	dst.SetColored(r.X, r.Y, BirdBeak, core.ColorBird)
	dst.DrawHLine(r.X+1, r.Y, r.W-1, wing, core.ColorBird)
}
