// Package telemetry records scene events and produces windowed interaction summaries.
package telemetry

import "github.com/pthm-cable/lanterns/scene"

// EventRecord is the flat CSV form of a scene event.
type EventRecord struct {
	Tick      int64  `csv:"tick"`
	AtMS      int64  `csv:"at_ms"`
	Type      string `csv:"type"`
	Label     string `csv:"label"`
	HeldTicks int32  `csv:"held_ticks"`
	Count     int    `csv:"count"`
	Reason    string `csv:"reason"`
}

// NewEventRecord flattens a scene event.
func NewEventRecord(ev scene.Event) EventRecord {
	return EventRecord{
		Tick:      ev.Tick,
		AtMS:      ev.At.Milliseconds(),
		Type:      ev.Type.String(),
		Label:     ev.Label,
		HeldTicks: ev.HeldTicks,
		Count:     ev.Count,
		Reason:    ev.Reason,
	}
}
