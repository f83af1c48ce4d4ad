package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/games/dino"
	"github.com/vovakirdan/dinodash/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// ModelOptions configures the play view.
type ModelOptions struct {
	Runtime  core.RuntimeConfig
	Preset   string      // Difficulty preset recorded with each run
	MaxStep  float64     // Largest simulation step per frame
	Recorder RunRecorder // Optional run history
	Logger   *log.Logger // Defaults to a discard logger
}

// Model is the Bubble Tea model for playing Mini Dino Dash.
type Model struct {
	game     *dino.Game
	screen   *core.Screen
	opts     ModelOptions
	keys     KeyMap
	help     help.Model
	clock    *frameClock
	input    core.InputFrame
	state    core.GameState
	quitting bool
	back     bool
	scores   bool // Scoreboard requested
}

// NewModel creates a Bubble Tea model driving game.
func NewModel(game *dino.Game, opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MaxStep <= 0 {
		opts.MaxStep = game.Session().Config().Frame.MaxStep
	}
	clock := newFrameClock(opts.Runtime.TickRate, opts.MaxStep)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		clock:  &clock,
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return max(0, h-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues actions for the next frame; view keys act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		m.pauseIfRunning()
		m.scores = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.input.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused || !m.state.Started) {
		m.back = true
	}
	return m, nil
}

// pauseIfRunning queues a pause so leaving the view never lets the run
// continue unattended.
func (m *Model) pauseIfRunning() {
	if m.state.Started && !m.state.GameOver && !m.state.Paused {
		m.input.Set(core.ActionPause)
	}
}

// handleTick runs one simulation frame with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.step(now)
	result := m.game.Step(m.input, dt)
	m.state = result.State
	m.input.Clear()

	if result.RunEnded {
		m.recordRun()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun stores the run that just ended. Failures are logged and play
// continues.
func (m Model) recordRun() {
	sum := m.game.Summary()
	m.opts.Logger.Info("run finished",
		"player", m.opts.Runtime.Player,
		"score", sum.Score,
		"best", m.state.Best,
		"cleared", sum.Cleared,
		"jumps", sum.Jumps,
		"elapsed", fmt.Sprintf("%.1fs", sum.Elapsed),
	)

	if m.opts.Recorder == nil || sum.Score == 0 {
		return
	}
	_, err := m.opts.Recorder.SaveRun(storage.Run{
		Player:   m.opts.Runtime.Player,
		Preset:   m.opts.Preset,
		Score:    sum.Score,
		Cleared:  sum.Cleared,
		Duration: time.Duration(sum.Elapsed * float64(time.Second)),
	})
	if err != nil {
		m.opts.Logger.Warn("cannot record run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackRequested returns true if the user asked to leave the play view.
func (m Model) BackRequested() bool {
	return m.back
}

// ScoresRequested returns true if the user asked for the scoreboard.
func (m Model) ScoresRequested() bool {
	return m.scores
}
