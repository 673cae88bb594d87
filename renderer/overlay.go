package renderer

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lanterns/scene"
)

// Overlay layout
const (
	messageOffset   = 80 // from bottom edge
	captionOffset   = 40
	messageFontSize = 20
	captionFontSize = 16
	loadingFontSize = 24
	fontLoadSize    = 32
	textSpacing     = 1
	lineAlpha       = 30

	asciiFirst = ' '
	asciiLast  = '~'
)

// OverlayRenderer draws constellation lines and the text overlays.
type OverlayRenderer struct {
	font   rl.Font
	custom bool
}

// NewOverlayRenderer loads fontPath with glyphs for every rune in texts.
// An empty or missing path falls back to the raylib default font.
func NewOverlayRenderer(fontPath string, texts ...string) *OverlayRenderer {
	o := &OverlayRenderer{font: rl.GetFontDefault()}
	if fontPath == "" {
		warnMissingGlyphs(fontPath, texts)
		return o
	}
	if _, err := os.Stat(fontPath); err != nil {
		slog.Warn("font unavailable, using default", "path", fontPath, "error", err)
		warnMissingGlyphs(fontPath, texts)
		return o
	}

	o.font = rl.LoadFontEx(fontPath, fontLoadSize, glyphSet(texts))
	rl.SetTextureFilter(o.font.Texture, rl.FilterBilinear)
	o.custom = true
	return o
}

// unsupportedGlyphs counts the distinct runes in texts outside the default
// font's printable ASCII range.
func unsupportedGlyphs(texts []string) int {
	return len(glyphSet(texts)) - (asciiLast - asciiFirst + 1)
}

func warnMissingGlyphs(fontPath string, texts []string) {
	if n := unsupportedGlyphs(texts); n > 0 {
		slog.Warn("default font cannot draw overlay text, set assets.font to a TTF covering it",
			"path", fontPath, "missing_glyphs", n)
	}
}

// glyphSet returns printable ASCII plus every distinct rune in texts.
func glyphSet(texts []string) []rune {
	seen := make(map[rune]bool)
	var runes []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			runes = append(runes, r)
		}
	}
	for r := rune(asciiFirst); r <= asciiLast; r++ {
		add(r)
	}
	for _, s := range texts {
		for _, r := range s {
			if r != '\n' {
				add(r)
			}
		}
	}
	return runes
}

// Draw renders the overlays for one frame.
func (o *OverlayRenderer) Draw(frame scene.Frame) {
	if !frame.Loaded {
		o.drawCentered("Loading...", frame.Width/2, frame.Height/2, loadingFontSize, rl.Color{R: 255, G: 255, B: 255, A: 200})
		return
	}

	if frame.Mode == scene.ModeConstellation {
		o.drawLines(frame.Lanterns)
	}
	if frame.MessageAlpha > 0 {
		o.drawCentered(frame.Message, frame.Width/2, frame.Height-messageOffset, messageFontSize,
			rl.Color{R: 255, G: 230, B: 180, A: frame.MessageAlpha})
	}
	// Nearly transparent captions are skipped
	if frame.CaptionAlpha > 1 {
		o.drawCentered(frame.Caption, frame.Width/2, frame.Height-captionOffset, captionFontSize,
			rl.Color{R: 255, G: 255, B: 255, A: frame.CaptionAlpha})
	}
}

// drawLines connects consecutive lanterns, wrapping the last to the first.
func (o *OverlayRenderer) drawLines(lanterns []scene.LanternState) {
	n := len(lanterns)
	if n < 2 {
		return
	}
	c := rl.Color{R: 255, G: 220, B: 160, A: lineAlpha}
	for i := range lanterns {
		a := lanterns[i]
		b := lanterns[(i+1)%n]
		rl.DrawLineEx(rl.Vector2{X: a.X, Y: a.Y}, rl.Vector2{X: b.X, Y: b.Y}, 1, c)
	}
}

// drawCentered draws text centered horizontally on cx with its block centered on cy.
func (o *OverlayRenderer) drawCentered(text string, cx, cy, size float32, c rl.Color) {
	if text == "" {
		return
	}
	dim := rl.MeasureTextEx(o.font, text, size, textSpacing)
	pos := rl.Vector2{X: cx - dim.X/2, Y: cy - dim.Y/2}
	rl.DrawTextEx(o.font, text, pos, size, textSpacing, c)
}

// Unload frees the custom font, if one was loaded.
func (o *OverlayRenderer) Unload() {
	if o.custom {
		rl.UnloadFont(o.font)
		o.custom = false
	}
}
