package scene

import "time"

// Clock supplies monotonic session time.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration { return f() }

// FrameClock advances by a fixed step per tick. Used for headless runs and tests.
type FrameClock struct {
	step time.Duration
	now  time.Duration
}

// NewFrameClock creates a clock at zero that advances by step.
func NewFrameClock(step time.Duration) *FrameClock {
	if step <= 0 {
		step = time.Second / 60
	}
	return &FrameClock{step: step}
}

// Now implements Clock.
func (c *FrameClock) Now() time.Duration { return c.now }

// Step advances one frame.
func (c *FrameClock) Step() { c.now += c.step }

// Add advances by an arbitrary duration.
func (c *FrameClock) Add(d time.Duration) { c.now += d }
