// Package renderer draws scene snapshots with raylib.
package renderer

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lanterns/components"
	"github.com/pthm-cable/lanterns/scene"
)

// glowLayer is one ring set of the lantern glow.
type glowLayer struct {
	count    int
	diameter float32 // first ring diameter as a multiple of lantern size
	shrink   float32 // diameter lost per ring
	alpha    float32 // first ring alpha at glow 1
	normal   rl.Color
	held     rl.Color
}

// Halo, bloom and core, drawn in that order
var glowLayers = [...]glowLayer{
	{count: 4, diameter: 2.5, shrink: 0.3, alpha: 8,
		normal: rl.Color{R: 255, G: 140, B: 40}, held: rl.Color{R: 255, G: 180, B: 80}},
	{count: 3, diameter: 1.4, shrink: 0.15, alpha: 15,
		normal: rl.Color{R: 255, G: 160, B: 60}, held: rl.Color{R: 255, G: 200, B: 100}},
	{count: 2, diameter: 0.9, shrink: 0.15, alpha: 25,
		normal: rl.Color{R: 255, G: 180, B: 80}, held: rl.Color{R: 255, G: 220, B: 120}},
}

// ring returns the radius and alpha of ring i for a lantern of the given size and glow.
func (g glowLayer) ring(i int, size, glow float32) (radius float32, alpha uint8) {
	d := size * (g.diameter - g.shrink*float32(i)) * glow
	return d / 2, clampAlpha(g.alpha / float32(i+1) * glow)
}

// Image and frame styling
const (
	tintNormal  uint8   = 200
	tintHeld    uint8   = 255
	frameNormal float32 = 2
	frameHeld   float32 = 2.5
	frameAlphaN uint8   = 160
	frameAlphaH uint8   = 220
)

// LanternRenderer draws lantern glow, artwork and frame.
type LanternRenderer struct {
	textures map[int]rl.Texture2D
}

// NewLanternRenderer creates a renderer with no textures uploaded.
func NewLanternRenderer() *LanternRenderer {
	return &LanternRenderer{textures: make(map[int]rl.Texture2D)}
}

// Upload converts a decoded artwork into a GPU texture.
// Must be called on the goroutine that owns the raylib window.
func (r *LanternRenderer) Upload(art *components.Artwork, img image.Image) {
	if old, ok := r.textures[art.ID]; ok {
		rl.UnloadTexture(old)
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	r.textures[art.ID] = tex
}

// TextureCount returns how many artworks have textures.
func (r *LanternRenderer) TextureCount() int {
	return len(r.textures)
}

// Draw renders every lantern in the frame, last on top.
func (r *LanternRenderer) Draw(frame scene.Frame) {
	for i := range frame.Lanterns {
		l := &frame.Lanterns[i]
		r.drawGlow(l)
		r.drawImage(l)
	}
}

func (r *LanternRenderer) drawGlow(l *scene.LanternState) {
	center := rl.Vector2{X: l.X, Y: l.Y}

	rl.BeginBlendMode(rl.BlendAdditive)
	for _, layer := range glowLayers {
		c := layer.normal
		if l.Held {
			c = layer.held
		}
		for i := 0; i < layer.count; i++ {
			radius, a := layer.ring(i, l.Size, l.Glow)
			c.A = a
			rl.DrawCircleV(center, radius, c)
		}
	}
	rl.EndBlendMode()
}

func (r *LanternRenderer) drawImage(l *scene.LanternState) {
	box := l.Size * FrameScale
	frame := rl.Rectangle{X: l.X - box/2, Y: l.Y - box/2, Width: box, Height: box}

	if tex, ok := r.texture(l.Art); ok {
		w, h := ContainFit(float32(tex.Width), float32(tex.Height), box)
		src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
		dst := rl.Rectangle{X: l.X - w/2, Y: l.Y - h/2, Width: w, Height: h}

		tint := tintNormal
		if l.Held {
			tint = tintHeld
		}
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.Color{R: 255, G: 255, B: 255, A: tint})
	}

	thick, alpha := frameNormal, frameAlphaN
	if l.Held {
		thick, alpha = frameHeld, frameAlphaH
	}
	rl.DrawRectangleLinesEx(frame, thick, rl.Color{R: 255, G: 220, B: 160, A: alpha})

	if l.Held {
		inner := rl.Rectangle{
			X:      frame.X + innerInset,
			Y:      frame.Y + innerInset,
			Width:  frame.Width - 2*innerInset,
			Height: frame.Height - 2*innerInset,
		}
		rl.DrawRectangleLinesEx(inner, 1, rl.Color{R: 255, G: 240, B: 200, A: 120})
	}
}

func (r *LanternRenderer) texture(art *components.Artwork) (rl.Texture2D, bool) {
	if art == nil {
		return rl.Texture2D{}, false
	}
	tex, ok := r.textures[art.ID]
	return tex, ok
}

// Unload frees every uploaded texture.
func (r *LanternRenderer) Unload() {
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
}

func clampAlpha(a float32) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 255 {
		return 255
	}
	return uint8(a)
}
