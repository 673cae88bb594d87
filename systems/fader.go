package systems

// Fade rates applied per tick
const (
	CaptionFadeRate float32 = 0.1
	MessageFadeRate float32 = 0.02
)

// Fader eases an opacity in [0, 1] toward fully visible or hidden.
type Fader struct {
	Value float32
	Rate  float32 // lerp factor per tick, in (0, 1]
}

// NewFader creates a hidden fader.
func NewFader(rate float32) Fader {
	return Fader{Rate: rate}
}

// Advance moves one step toward 1 when visible, toward 0 otherwise.
func (f *Fader) Advance(visible bool) {
	var target float32
	if visible {
		target = 1
	}
	f.Value += (target - f.Value) * f.Rate
}

// Reset hides the fader immediately.
func (f *Fader) Reset() {
	f.Value = 0
}

// Alpha returns the opacity scaled to 0-255.
func (f Fader) Alpha() uint8 {
	v := f.Value
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
