package scene

import "time"

// EventType identifies scene events.
type EventType uint8

const (
	EventLoadComplete EventType = iota
	EventCapture
	EventRelease
	EventAutoRelease
	EventRespawn
	EventConstellationEnter
	EventConstellationExit
)

var eventNames = [...]string{
	EventLoadComplete:       "load_complete",
	EventCapture:            "capture",
	EventRelease:            "release",
	EventAutoRelease:        "auto_release",
	EventRespawn:            "respawn",
	EventConstellationEnter: "constellation_enter",
	EventConstellationExit:  "constellation_exit",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Exit reasons for EventConstellationExit
const (
	ExitIdle    = "idle"
	ExitPointer = "pointer"
)

// Event represents a single scene event.
type Event struct {
	Type EventType
	Tick int64
	At   time.Duration

	// Optional fields depending on event type
	Label     string // artwork label for capture/release events
	HeldTicks int32  // ticks held at release
	Count     int    // lanterns involved (load, constellation)
	Reason    string // exit reason
}

// Observer receives scene events as they happen.
type Observer interface {
	Record(Event)
}
