package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/runner"
)

// Overlay messages.
const (
	MsgStart  = "Press Space to Start"
	MsgPaused = "Paused - Press P"
	MsgOver   = "Game Over - Press Space"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoEye    = '◆'
	DinoBow    = '✿'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	GroundChar = '▀'
	CloudChar  = '░'
	SparkChar  = '*'
	FadedSpark = '·'
)

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
	dx     int // Horizontal shake offset in cells
}

func newViewport(dst *core.Screen, w runner.World, shake float64) viewport {
	v := viewport{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
	}
	if shake > 0 {
		v.dx = 1
		if int(shake*30)%2 == 1 {
			v.dx = -1
		}
	}
	return v
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x*v.sx)) + v.dx
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// rect converts a world box into at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, x1 := v.col(b.X), v.col(b.Right())
	y0, y1 := v.row(b.Y), v.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.session.Snapshot()
	v := newViewport(dst, snap.World, snap.ShakeTime)

	drawClouds(dst, v, snap.Clouds)
	g.drawGround(dst, v, snap.World)
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawDino(dst, v, snap.Player)
	drawSparkles(dst, v, snap.Sparkles)

	g.drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawClouds(dst *core.Screen, v viewport, clouds []runner.Cloud) {
	for _, c := range clouds {
		x := v.col(c.X)
		y := v.row(c.Y)
		w := max(2, int(c.Size*2*v.sx))
		dst.DrawHLine(x, y, w, CloudChar, core.ColorCloud)
		if w > 3 {
			dst.DrawHLine(x+1, y-1, w-2, CloudChar, core.ColorCloud)
		}
	}
}

// drawGround draws the ground line and the scrolling texture below it.
func (g *Game) drawGround(dst *core.Screen, v viewport, w runner.World) {
	gy := core.Clamp(v.row(w.GroundY), 0, dst.Height()-1)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGround)

	off := int(g.scroll * v.sx)
	for y := gy + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			switch p := (x + off + y*5) % 23; {
			case p == 0:
				dst.SetColored(x, y, '*', core.ColorFlower)
			case p%7 == 3:
				dst.SetColored(x, y, '.', core.ColorSky)
			}
		}
	}
}

// drawDino renders the player sprite into its cell box.
//
//	 ✿█◆
//	████
//	 ╱ ╲
func (g *Game) drawDino(dst *core.Screen, v viewport, p runner.Player) {
	r := v.rect(p.Box())
	if r.W < 3 || r.H < 3 {
		dst.FillRect(r, DinoBody, core.ColorDino)
		return
	}

	// Head
	dst.SetColored(r.Right()-3, r.Y, DinoBow, core.ColorBow)
	dst.SetColored(r.Right()-2, r.Y, DinoBody, core.ColorDino)
	dst.SetColored(r.Right()-1, r.Y, DinoEye, core.ColorDinoDark)

	// Body
	dst.FillRect(core.NewRect(r.X, r.Y+1, r.W, r.H-2), DinoBody, core.ColorDino)

	// Legs, animated by distance while grounded, tucked in the air
	legY := r.Bottom() - 1
	switch {
	case !p.Grounded:
		dst.SetColored(r.X+1, legY, DinoLeg2, core.ColorDinoDark)
		dst.SetColored(r.X+2, legY, DinoLeg1, core.ColorDinoDark)
	case int(g.scroll/30)%2 == 0:
		dst.SetColored(r.X+1, legY, DinoLeg1, core.ColorDinoDark)
		dst.SetColored(r.Right()-1, legY, DinoLeg2, core.ColorDinoDark)
	default:
		dst.SetColored(r.X+2, legY, DinoLeg1, core.ColorDinoDark)
		dst.SetColored(r.Right()-2, legY, DinoLeg2, core.ColorDinoDark)
	}
}

// drawSparkles draws the particles still on screen; sparkles never cover
// the HUD row.
func drawSparkles(dst *core.Screen, v viewport, sparkles []runner.Sparkle) {
	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	for _, s := range sparkles {
		x, y := v.col(s.X), v.row(s.Y)
		if !field.Contains(x, y) {
			continue
		}
		ch := FadedSpark
		if s.Alpha() > 0.5 {
			ch = SparkChar
		}
		dst.SetColored(x, y, ch, core.ColorSparkle)
	}
}

// drawHUD draws score on the left and best and speed on the right.
func (g *Game) drawHUD(dst *core.Screen, snap runner.Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorText)

	right := fmt.Sprintf(" Best: %d  Spd: %.0f ", snap.Best, snap.World.Speed)
	color := core.ColorText
	if g.bestFlash > 0 {
		right = fmt.Sprintf(" NEW BEST: %d  Spd: %.0f ", snap.Best, snap.World.Speed)
		color = core.ColorAlert
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, color)
}

// drawOverlay draws the phase message box; running games have none.
func drawOverlay(dst *core.Screen, snap runner.Snapshot) {
	switch snap.Phase {
	case runner.PhaseNotStarted:
		drawMessage(dst, core.ColorText, MsgStart)
	case runner.PhasePaused:
		drawMessage(dst, core.ColorText, MsgPaused)
	case runner.PhaseOver:
		drawMessage(dst, core.ColorAlert, MsgOver, fmt.Sprintf("Score: %d  |  Best: %d", snap.Score, snap.Best))
	case runner.PhaseRunning:
	}
}

// drawMessage draws a box in the center of the screen, one line per row.
func drawMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 3
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, core.ColorText)
	}
}
