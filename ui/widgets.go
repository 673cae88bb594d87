package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawTitle draws a title line and returns the next Y position.
func (r *Renderer) DrawTitle(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.TitleFontSize, r.Theme.TitleColor)
	return y + r.Theme.TitleFontSize + r.Theme.Padding/2
}

// DrawLine draws one body line and returns the next Y position.
func (r *Renderer) DrawLine(x, y int32, text string, c rl.Color) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, c)
	return y + r.Theme.LineHeight
}

// TextWidth returns the pixel width of text in the body font.
func (r *Renderer) TextWidth(text string, title bool) int32 {
	size := r.Theme.FontSize
	if title {
		size = r.Theme.TitleFontSize
	}
	return rl.MeasureText(text, size)
}
