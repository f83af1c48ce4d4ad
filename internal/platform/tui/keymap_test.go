package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinodash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tab is a view key", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Error("space should not quit")
	}
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	keys.MapKeyToFrame(runeKey('x'), &frame)

	if !frame.Has(core.ActionJump) {
		t.Error("jump should be recorded")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("repeated presses should collapse, got %v", frame.Actions)
	}

	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is not a frame action")
	}
}

func TestDisabledScoresBinding(t *testing.T) {
	keys := DefaultKeyMap()
	tab := tea.KeyMsg{Type: tea.KeyTab}

	if !key.Matches(tab, keys.Scores) {
		t.Fatal("tab should open the scoreboard")
	}
	keys.Scores.SetEnabled(false)
	if key.Matches(tab, keys.Scores) {
		t.Error("disabled scores binding still matches")
	}
}
