package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dinodash/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSky:      lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
	core.ColorCloud:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorFlower:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorDino:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	core.ColorDinoDark: lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	core.ColorBow:      lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorBird:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	core.ColorSparkle:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
