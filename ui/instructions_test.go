package ui

import "testing"

// Size and Draw need a raylib window; these cover the pure state.

func TestInstructionsPanelToggle(t *testing.T) {
	p := NewInstructionsPanel(20, 20, 'h')

	if !p.IsVisible() {
		t.Fatal("panel should start visible")
	}
	if p.Toggle() {
		t.Error("first toggle should hide")
	}
	if !p.Toggle() {
		t.Error("second toggle should show")
	}

	p.SetVisible(false)
	if p.IsVisible() {
		t.Error("SetVisible(false) ignored")
	}
}

func TestInstructionsPanelText(t *testing.T) {
	p := NewInstructionsPanel(0, 0, 'h')

	if p.title != "Sky Lanterns" {
		t.Errorf("title = %q", p.title)
	}
	if p.hint != "Press H to toggle instructions" {
		t.Errorf("hint = %q", p.hint)
	}
	if len(p.lines) != 3 {
		t.Errorf("lines = %d, want 3", len(p.lines))
	}
}

func TestHiddenPanelContainsNothing(t *testing.T) {
	p := NewInstructionsPanel(0, 0, 'h')
	p.SetVisible(false)
	if p.Contains(5, 5) {
		t.Error("hidden panel should not capture presses")
	}
}
