// Package tui provides the Bubble Tea integration for Mini Dino Dash.
// It handles the terminal UI loop, input mapping, frame timing, the
// scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into simulation steps.
type frameClock struct {
	last    time.Time
	nominal float64 // Step used for the first frame
	maxStep float64 // Largest step handed to the simulation
}

func newFrameClock(tickRate int, maxStep float64) frameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return frameClock{nominal: 1 / float64(tickRate), maxStep: maxStep}
}

// step returns the seconds since the previous tick, clamped to
// [0, maxStep]. A stalled terminal or suspended process therefore never
// produces a long jump in the simulation.
func (c *frameClock) step(now time.Time) float64 {
	dt := c.nominal
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now
	return min(max(dt, 0), c.maxStep)
}
