package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/lanterns/scene"
)

// Collector accumulates scene events within time windows and produces Summary records.
// It implements scene.Observer. Every event is also appended to the output's event log.
type Collector struct {
	windowDurationTicks int64
	step                time.Duration

	out *OutputManager

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	captures       int
	releases       int
	autoReleases   int
	respawns       int
	constellations int
	pointerExits   int
	holdSeconds    []float64
}

// NewCollector creates a collector.
// windowDurationSec: how long each window lasts in scene seconds
// step: duration of one tick (used for tick-to-time conversion)
// out may be nil to disable the event log.
func NewCollector(windowDurationSec float64, step time.Duration, out *OutputManager) *Collector {
	if step <= 0 {
		step = time.Second / 60
	}
	ticksPerWindow := int64(windowDurationSec * float64(time.Second) / float64(step))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		step:                step,
		out:                 out,
	}
}

// Record implements scene.Observer.
func (c *Collector) Record(ev scene.Event) {
	switch ev.Type {
	case scene.EventCapture:
		c.captures++
	case scene.EventRelease:
		c.releases++
		c.recordHold(ev.HeldTicks)
	case scene.EventAutoRelease:
		c.autoReleases++
		c.recordHold(ev.HeldTicks)
	case scene.EventRespawn:
		c.respawns++
	case scene.EventConstellationEnter:
		c.constellations++
	case scene.EventConstellationExit:
		if ev.Reason == scene.ExitPointer {
			c.pointerExits++
		}
	}

	if err := c.out.WriteEvent(NewEventRecord(ev)); err != nil {
		slog.Warn("event write failed", "type", ev.Type.String(), "error", err)
	}
}

func (c *Collector) recordHold(ticks int32) {
	c.holdSeconds = append(c.holdSeconds, float64(ticks)*c.step.Seconds())
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a Summary and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, lanterns int, mode scene.Mode) Summary {
	mean, p50, p90 := Summarize(c.holdSeconds)

	s := Summary{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.step.Seconds(),

		Lanterns: lanterns,
		Mode:     mode.String(),

		Captures:       c.captures,
		Releases:       c.releases,
		AutoReleases:   c.autoReleases,
		Respawns:       c.respawns,
		Constellations: c.constellations,
		PointerExits:   c.pointerExits,

		HoldMean: mean,
		HoldP50:  p50,
		HoldP90:  p90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.captures = 0
	c.releases = 0
	c.autoReleases = 0
	c.respawns = 0
	c.constellations = 0
	c.pointerExits = 0
	c.holdSeconds = c.holdSeconds[:0]

	return s
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
