package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinodash/internal/config"
)

// SessionModel is the top-level model: the play view with the scoreboard
// reachable from it. Local play and every SSH connection run one.
type SessionModel struct {
	play     Model
	board    *ScoreboardModel
	scores   ScoreLoader
	preset   config.DifficultyPreset
	width    int
	height   int
	quitting bool
}

// NewSessionModel wraps a play model. With a nil loader the scoreboard key
// is disabled.
func NewSessionModel(play Model, scores ScoreLoader, preset config.DifficultyPreset) SessionModel {
	if scores == nil {
		play.keys.Scores.SetEnabled(false)
	}
	return SessionModel{
		play:   play,
		scores: scores,
		preset: preset,
		width:  play.opts.Runtime.ScreenW,
		height: play.opts.Runtime.ScreenH,
	}
}

// Init starts the play view's tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.play.Init()
}

// Update routes messages. Ticks always reach the play view so its loop
// keeps running behind the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.board != nil {
			board, _ := m.board.Update(msg)
			m.setBoard(board)
		}
		return m.updatePlay(msg)

	case TickMsg:
		return m.updatePlay(msg)

	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.updatePlay(msg)
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updatePlay(msg)
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if play, ok := next.(Model); ok {
		m.play = play
	}

	switch {
	case m.play.IsQuitting(), m.play.BackRequested():
		m.quitting = true
		return m, tea.Quit
	case m.play.ScoresRequested():
		m.play.scores = false
		board := NewScoreboardModel(m.scores, m.preset, m.width, m.height)
		board.embedded = true
		m.board = &board
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.setBoard(next)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) setBoard(next tea.Model) {
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return m.play.View()
}

// Play returns the play view.
func (m SessionModel) Play() Model {
	return m.play
}

// ShowingScores reports whether the scoreboard is open.
func (m SessionModel) ShowingScores() bool {
	return m.board != nil
}

// RunSession starts a local Bubble Tea program with the play view and the
// scoreboard.
func RunSession(play Model, scores ScoreLoader, preset config.DifficultyPreset) error {
	p := tea.NewProgram(
		NewSessionModel(play, scores, preset),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
