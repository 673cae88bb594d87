package systems

import (
	"github.com/ojrac/opensimplex-go"
)

// Flicker parameters
const (
	FlickerRate float64 = 0.05 // noise-space units per tick
	FlickerMin  float32 = 0.85
	FlickerMax  float32 = 1.15
)

// Flicker maps a smooth noise signal onto a glow multiplier.
type Flicker struct {
	noise opensimplex.Noise
}

// NewFlicker creates a flicker source. The same seed yields the same sequence.
func NewFlicker(seed int64) *Flicker {
	return &Flicker{noise: opensimplex.NewNormalized(seed)}
}

// Factor returns the multiplier in [FlickerMin, FlickerMax] for a lantern phase at tick.
func (f *Flicker) Factor(tick int64, phase float32) float32 {
	n := float32(f.noise.Eval2(float64(tick)*FlickerRate+float64(phase), 0))
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	return FlickerMin + n*(FlickerMax-FlickerMin)
}

// Glow returns the instantaneous glow used for drawing.
func (f *Flicker) Glow(intensity float32, tick int64, phase float32) float32 {
	return intensity * f.Factor(tick, phase)
}
