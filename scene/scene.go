// Package scene runs the lantern session: mode state machine, pointer capture,
// and the per-tick update that drives the lantern store.
package scene

import (
	"log/slog"
	"math/rand"
	"time"
	"unicode"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lanterns/components"
	"github.com/pthm-cable/lanterns/systems"
)

// Mode is the scene-wide behavior state.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeConstellation
)

func (m Mode) String() string {
	if m == ModeConstellation {
		return "constellation"
	}
	return "normal"
}

// Timing constants
const (
	IdleBeforeConstellation = 15 * time.Second
	ConstellationTimeout    = 25 * time.Second // measured from the last interaction
	InitialPopulation       = 8
)

// Toggler owns a piece of presentation state flipped by the toggle key.
type Toggler interface {
	Toggle() bool
}

// Options configures a Scene.
type Options struct {
	Captions    []string // one is picked at random for each capture
	Message     string   // shown during constellation mode
	ToggleKey   rune     // matched case-insensitively
	Toggler     Toggler  // nil disables the toggle key
	Observer    Observer // nil disables event reporting
	FlickerSeed int64
}

// Scene holds the complete session state.
type Scene struct {
	store   *systems.Store
	clock   Clock
	rng     *rand.Rand
	flicker *systems.Flicker

	// Mode state
	mode        Mode
	message     string
	messageFade systems.Fader

	// Interaction state
	lastInteraction time.Duration
	heldEntity      ecs.Entity
	hasHeld         bool
	caption         string
	captionFade     systems.Fader

	loaded bool
	tick   int64

	captions  []string
	toggleKey rune
	toggler   Toggler
	observer  Observer

	// Reused per-tick buffers
	offScreen []ecs.Entity
	frame     Frame
}

// New creates a scene for a canvas of the given size. The idle timer starts at clock.Now().
func New(rng *rand.Rand, clock Clock, width, height float32, opts Options) *Scene {
	return &Scene{
		store:           systems.NewStore(rng, width, height),
		clock:           clock,
		rng:             rng,
		flicker:         systems.NewFlicker(opts.FlickerSeed),
		message:         opts.Message,
		messageFade:     systems.NewFader(systems.MessageFadeRate),
		captionFade:     systems.NewFader(systems.CaptionFadeRate),
		lastInteraction: clock.Now(),
		captions:        opts.Captions,
		toggleKey:       unicode.ToLower(opts.ToggleKey),
		toggler:         opts.Toggler,
		observer:        opts.Observer,
	}
}

// Store exposes the lantern store.
func (s *Scene) Store() *systems.Store { return s.store }

// Mode returns the current mode.
func (s *Scene) Mode() Mode { return s.mode }

// Tick returns the number of updates run since loading completed.
func (s *Scene) Tick() int64 { return s.tick }

// Loaded reports whether the asset load phase has completed.
func (s *Scene) Loaded() bool { return s.loaded }

// LastInteraction returns the time of the last pointer press or constellation exit.
func (s *Scene) LastInteraction() time.Duration { return s.lastInteraction }

// Held returns the lantern under the pointer, if any.
func (s *Scene) Held() (ecs.Entity, bool) {
	if !s.hasHeld || !s.store.Alive(s.heldEntity) {
		return ecs.Entity{}, false
	}
	return s.heldEntity, true
}

// Caption returns the caption text and its opacity in [0, 1].
func (s *Scene) Caption() (string, float32) { return s.caption, s.captionFade.Value }

// Message returns the constellation message and its opacity in [0, 1].
func (s *Scene) Message() (string, float32) { return s.message, s.messageFade.Value }

// AddArtwork adds a loaded artwork to the spawn pool.
func (s *Scene) AddArtwork(a *components.Artwork) {
	s.store.AddArtwork(a)
}

// FinishLoading ends the load phase and spawns the initial population.
// Call once every configured artwork has loaded or failed. The idle timer restarts here.
func (s *Scene) FinishLoading() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.lastInteraction = s.clock.Now()
	for i := 0; i < InitialPopulation; i++ {
		s.store.Spawn()
	}
	slog.Info("lanterns_ready", "artworks", len(s.store.Artworks()), "lanterns", s.store.Len())
	s.emit(Event{Type: EventLoadComplete, Count: s.store.Len()})
}

// Resize updates the canvas size used for spawning and formation.
func (s *Scene) Resize(width, height float32) {
	s.store.Resize(width, height)
}

// Update runs one tick.
func (s *Scene) Update() {
	if !s.loaded {
		return
	}

	idle := s.clock.Now() - s.lastInteraction
	if s.mode == ModeNormal && idle > IdleBeforeConstellation {
		s.enterConstellation()
	}

	s.updateLanterns()

	s.messageFade.Advance(s.mode == ModeConstellation)
	if s.mode == ModeConstellation && idle > ConstellationTimeout {
		s.exitConstellation(ExitIdle)
	}

	_, held := s.Held()
	s.captionFade.Advance(held)

	s.tick++
}

// updateLanterns moves every lantern, then replaces the ones that left the canvas.
func (s *Scene) updateLanterns() {
	// First pass: integrate and collect (no structural changes while iterating)
	s.offScreen = s.offScreen[:0]
	s.store.ForEach(func(_ int, e ecs.Entity, v systems.LanternView) {
		res := systems.StepLantern(v, s.tick)
		if res.Released {
			s.emit(Event{Type: EventAutoRelease, Label: v.Lantern.Label, HeldTicks: v.Hold.Ticks})
			s.clearHeld()
		}
		if res.OffScreen {
			s.offScreen = append(s.offScreen, e)
		}
	})

	// Second pass: remove and respawn
	for _, e := range s.offScreen {
		if s.hasHeld && s.heldEntity == e {
			s.clearHeld()
		}
		label := s.store.Get(e).Lantern.Label
		s.store.RemoveAndRespawn(e)
		s.emit(Event{Type: EventRespawn, Label: label})
	}
}

func (s *Scene) enterConstellation() {
	// A held lantern joins the formation like the others
	if e, ok := s.Held(); ok {
		s.release(e, EventRelease)
	}

	s.mode = ModeConstellation
	s.messageFade.Reset()
	s.store.AssignTargets(systems.CircleTargets(s.store.Len(), s.store.Width(), s.store.Height()))

	slog.Info("constellation_enter", "tick", s.tick, "lanterns", s.store.Len())
	s.emit(Event{Type: EventConstellationEnter, Count: s.store.Len()})
}

func (s *Scene) exitConstellation(reason string) {
	s.mode = ModeNormal
	s.messageFade.Reset()
	s.store.ClearTargets()
	s.lastInteraction = s.clock.Now()

	slog.Info("constellation_exit", "tick", s.tick, "reason", reason)
	s.emit(Event{Type: EventConstellationExit, Count: s.store.Len(), Reason: reason})
}

// PointerDown handles a press at (x, y).
// In constellation mode the press only ends the formation.
func (s *Scene) PointerDown(x, y float32) {
	if s.mode == ModeConstellation {
		s.exitConstellation(ExitPointer)
		return
	}

	if e, ok := s.store.QueryAt(x, y); ok {
		prev, held := s.Held()
		if held && prev == e {
			// Already pinned; capturing again would save the zeroed velocity
			s.lastInteraction = s.clock.Now()
			return
		}
		// Only one lantern may be held at a time
		if held {
			s.release(prev, EventRelease)
		}

		v := s.store.Get(e)
		systems.Capture(v)
		s.heldEntity = e
		s.hasHeld = true
		s.caption = s.composeCaption(v.Lantern.Label)
		s.captionFade.Reset()

		slog.Debug("lantern_captured", "tick", s.tick, "label", v.Lantern.Label)
		s.emit(Event{Type: EventCapture, Label: v.Lantern.Label})
	}

	s.lastInteraction = s.clock.Now()
}

// PointerUp releases the held lantern, if any.
func (s *Scene) PointerUp() {
	if e, ok := s.Held(); ok {
		s.release(e, EventRelease)
	}
}

// Key handles a character press. Returns true if it flipped the toggled UI state.
func (s *Scene) Key(r rune) bool {
	if s.toggler == nil || s.toggleKey == 0 || unicode.ToLower(r) != s.toggleKey {
		return false
	}
	s.toggler.Toggle()
	return true
}

func (s *Scene) release(e ecs.Entity, typ EventType) {
	v := s.store.Get(e)
	held := v.Hold.Ticks
	systems.Release(v)
	s.clearHeld()
	s.emit(Event{Type: typ, Label: v.Lantern.Label, HeldTicks: held})
}

func (s *Scene) clearHeld() {
	s.heldEntity = ecs.Entity{}
	s.hasHeld = false
	s.captionFade.Reset()
}

func (s *Scene) composeCaption(label string) string {
	if len(s.captions) == 0 {
		return label
	}
	return s.captions[s.rng.Intn(len(s.captions))] + "\n" + label
}

func (s *Scene) emit(ev Event) {
	if s.observer == nil {
		return
	}
	ev.Tick = s.tick
	ev.At = s.clock.Now()
	s.observer.Record(ev)
}

// Snapshot captures the state the renderer draws.
// The returned Lanterns slice is reused by the next call.
func (s *Scene) Snapshot() Frame {
	f := &s.frame
	f.Loaded = s.loaded
	f.Width = s.store.Width()
	f.Height = s.store.Height()
	f.Tick = s.tick
	f.Mode = s.mode
	f.Message = s.message
	f.MessageAlpha = s.messageFade.Alpha()
	f.Caption = s.caption
	f.CaptionAlpha = s.captionFade.Alpha()

	f.Lanterns = f.Lanterns[:0]
	s.store.ForEach(func(_ int, _ ecs.Entity, v systems.LanternView) {
		f.Lanterns = append(f.Lanterns, LanternState{
			X:     v.Pos.X,
			Y:     v.Pos.Y,
			Size:  v.Lantern.Size,
			Glow:  s.flicker.Glow(v.Glow.Intensity, s.tick, v.Lantern.FlickerPhase),
			Held:  v.Hold.Held,
			Art:   v.Lantern.Art,
			Label: v.Lantern.Label,
		})
	})
	return *f
}
