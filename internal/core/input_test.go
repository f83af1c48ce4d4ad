package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("Empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionNone)

	if !f.Has(ActionJump) {
		t.Error("Frame should have Jump after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if len(f.Actions) != 1 {
		t.Errorf("Repeated Set should collapse, got %d actions", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionPause, "Pause"},
		{ActionBack, "Back"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
