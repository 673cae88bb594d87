// Package components defines ECS components for the lantern scene.
package components

// Artwork is a loaded painting. One Artwork is shared by every lantern that shows it.
type Artwork struct {
	ID     int // index in the configured catalog; renderers key textures by it
	Title  string
	Artist string
	Width  int
	Height int
}

// Label returns the caption line identifying the painting.
func (a *Artwork) Label() string {
	return a.Title + " - " + a.Artist
}

// Aspect returns width/height, or 1 for a degenerate image.
func (a *Artwork) Aspect() float32 {
	if a.Width <= 0 || a.Height <= 0 {
		return 1
	}
	return float32(a.Width) / float32(a.Height)
}

// Lantern holds the per-lantern properties fixed at spawn.
type Lantern struct {
	Size         float32  // drawn diameter basis
	Speed        float32  // multiplier on vertical drift
	SwayPhase    float32  // radians, offsets horizontal oscillation
	FlickerPhase float32  // noise-space offset for the flicker signal
	Art          *Artwork // never reassigned after spawn
	Label        string
}

// Glow holds the base glow intensity before flicker is applied.
type Glow struct {
	Intensity float32
}

// Hold tracks pointer capture.
type Hold struct {
	Held    bool
	Ticks   int32   // frames held, reset while floating
	SavedVY float32 // vertical velocity restored on release
}
