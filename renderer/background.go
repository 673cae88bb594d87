package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the canvas with the night sky color.
type BackgroundRenderer struct {
	top, bottom rl.Color
}

// NewBackgroundRenderer creates a background with the given base color.
// The lower edge is slightly warmer, as if lit by the rising lanterns.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		top:    rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
		bottom: rl.Color{R: addClamp(baseR, 14), G: addClamp(baseG, 8), B: baseB, A: 255},
	}
}

// Draw clears the screen and paints the sky gradient.
func (b *BackgroundRenderer) Draw(width, height int32) {
	rl.ClearBackground(b.top)
	rl.DrawRectangleGradientV(0, height/2, width, height-height/2, b.top, b.bottom)
}

func addClamp(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
