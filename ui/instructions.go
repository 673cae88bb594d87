package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// InstructionsPanel shows how to interact with the scene.
// It is visible at startup and flipped by the toggle key or its Hide button.
type InstructionsPanel struct {
	renderer *Renderer
	x, y     int32
	title    string
	lines    []string
	hint     string
	visible  bool
}

// NewInstructionsPanel creates a visible panel anchored at (x, y).
// toggleKey names the key shown in the hint line.
func NewInstructionsPanel(x, y int32, toggleKey rune) *InstructionsPanel {
	return &InstructionsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		title:    "Sky Lanterns",
		lines: []string{
			"Touch lanterns to hold them",
			"Watch the artwork glow",
			"Stay idle to see a surprise",
		},
		hint:    "Press " + strings.ToUpper(string(toggleKey)) + " to toggle instructions",
		visible: true,
	}
}

// SetVisible shows or hides the panel.
func (p *InstructionsPanel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is shown.
func (p *InstructionsPanel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *InstructionsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Size returns the panel dimensions.
func (p *InstructionsPanel) Size() (w, h int32) {
	t := p.renderer.Theme
	w = max(t.MinPanelWidth, p.renderer.TextWidth(p.title, true))
	for _, l := range p.lines {
		w = max(w, p.renderer.TextWidth(l, false))
	}
	w = max(w, p.renderer.TextWidth(p.hint, false))
	w += t.Padding * 2

	h = t.Padding*2 + t.TitleFontSize + t.Padding/2 +
		t.LineHeight*int32(len(p.lines)+1) + t.Padding/2 + t.ButtonHeight
	return w, h
}

// Contains reports whether a screen point lies on the visible panel.
// Presses on the panel should not reach the scene.
func (p *InstructionsPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	w, h := p.Size()
	return x >= float32(p.x) && x < float32(p.x+w) && y >= float32(p.y) && y < float32(p.y+h)
}

// Draw renders the panel.
func (p *InstructionsPanel) Draw() {
	if !p.visible {
		return
	}

	r := p.renderer
	t := r.Theme
	w, h := p.Size()
	r.DrawPanel(p.x, p.y, w, h)

	x := p.x + t.Padding
	y := r.DrawTitle(x, p.y+t.Padding, p.title)
	for _, l := range p.lines {
		y = r.DrawLine(x, y, l, t.TextColor)
	}
	y = r.DrawLine(x, y, p.hint, t.HintColor)
	y += t.Padding / 2

	btn := rl.Rectangle{X: float32(x), Y: float32(y), Width: 80, Height: float32(t.ButtonHeight)}
	if gui.Button(btn, "Hide") {
		p.visible = false
	}
}
