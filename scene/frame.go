package scene

import "github.com/pthm-cable/lanterns/components"

// LanternState is the per-lantern data a renderer needs.
type LanternState struct {
	X, Y  float32
	Size  float32
	Glow  float32 // base intensity times flicker
	Held  bool
	Art   *components.Artwork
	Label string
}

// Frame is a read-only snapshot of the scene for drawing.
type Frame struct {
	Loaded        bool
	Width, Height float32
	Tick          int64
	Mode          Mode

	Lanterns []LanternState // insertion order, last drawn on top

	Message      string
	MessageAlpha uint8
	Caption      string
	CaptionAlpha uint8
}
