// Package systems provides the lantern store and the per-tick update systems.
package systems

import (
	"math"
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lanterns/components"
)

// Spawn parameters
const (
	MinLanternSize float32 = 80
	MaxLanternSize float32 = 140
	MinRiseVY      float32 = -1.5
	MaxRiseVY      float32 = -0.5
	MinRiseSpeed   float32 = 0.5
	MaxRiseSpeed   float32 = 1.5
	BaseGlow       float32 = 0.6
	HeldGlow       float32 = 1.2

	flickerPhaseRange = 1000
)

// LanternView gives mutable access to one lantern's components.
// Pointers are valid until the next spawn, removal, or target change.
type LanternView struct {
	Pos     *components.Position
	Vel     *components.Velocity
	Lantern *components.Lantern
	Glow    *components.Glow
	Hold    *components.Hold
	Target  *components.Target // nil unless in constellation
}

// InConstellation reports whether the lantern is migrating toward a formation slot.
func (v LanternView) InConstellation() bool {
	return v.Target != nil
}

// Store owns the lantern entities and the pool of loaded artworks.
// Entities are kept in insertion order; later entries draw on top.
type Store struct {
	world *ecs.World
	rng   *rand.Rand

	mapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Lantern,
		components.Glow,
		components.Hold,
	]
	targetMap *ecs.Map[components.Target]

	order  []ecs.Entity
	images []*components.Artwork

	width, height float32
}

// NewStore creates an empty store for a canvas of the given size.
func NewStore(rng *rand.Rand, width, height float32) *Store {
	world := ecs.NewWorld()
	return &Store{
		world: world,
		rng:   rng,
		mapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Lantern,
			components.Glow,
			components.Hold,
		](world),
		targetMap: ecs.NewMap[components.Target](world),
		width:     width,
		height:    height,
	}
}

// AddArtwork makes an artwork eligible for future spawns.
func (s *Store) AddArtwork(a *components.Artwork) {
	s.images = append(s.images, a)
}

// Artworks returns the eligible artwork pool.
func (s *Store) Artworks() []*components.Artwork {
	return s.images
}

// Resize updates the canvas bounds used by spawn and formation.
func (s *Store) Resize(width, height float32) {
	s.width = width
	s.height = height
}

// Width returns the canvas width.
func (s *Store) Width() float32 { return s.width }

// Height returns the canvas height.
func (s *Store) Height() float32 { return s.height }

// Len returns the lantern population.
func (s *Store) Len() int {
	return len(s.order)
}

// Entities returns the lanterns in insertion order. The slice must not be modified.
func (s *Store) Entities() []ecs.Entity {
	return s.order
}

// Alive reports whether e still refers to a lantern in this store.
func (s *Store) Alive(e ecs.Entity) bool {
	return s.world.Alive(e)
}

// Get returns the components of a live lantern.
func (s *Store) Get(e ecs.Entity) LanternView {
	pos, vel, lantern, glow, hold := s.mapper.Get(e)
	v := LanternView{Pos: pos, Vel: vel, Lantern: lantern, Glow: glow, Hold: hold}
	if s.targetMap.Has(e) {
		v.Target = s.targetMap.Get(e)
	}
	return v
}

// Spawn creates a lantern just below the bottom edge.
// Returns false without spawning if no artwork has loaded yet.
func (s *Store) Spawn() (ecs.Entity, bool) {
	if len(s.images) == 0 {
		return ecs.Entity{}, false
	}

	art := s.images[s.rng.Intn(len(s.images))]
	size := s.uniform(MinLanternSize, MaxLanternSize)

	// Narrow canvases cannot honor the margin; center instead
	x := s.width / 2
	if s.width > 2*size {
		x = s.uniform(size, s.width-size)
	}

	pos := components.Position{X: x, Y: s.height + size}
	vel := components.Velocity{X: 0, Y: s.uniform(MinRiseVY, MaxRiseVY)}
	lantern := components.Lantern{
		Size:         size,
		Speed:        s.uniform(MinRiseSpeed, MaxRiseSpeed),
		SwayPhase:    s.uniform(0, 2*math.Pi),
		FlickerPhase: s.uniform(0, flickerPhaseRange),
		Art:          art,
		Label:        art.Label(),
	}
	glow := components.Glow{Intensity: BaseGlow}
	hold := components.Hold{}

	e := s.mapper.NewEntity(&pos, &vel, &lantern, &glow, &hold)
	s.order = append(s.order, e)
	return e, true
}

// QueryAt returns the topmost lantern whose center lies within half its size of (x, y).
func (s *Store) QueryAt(x, y float32) (ecs.Entity, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.order[i]
		pos, _, lantern, _, _ := s.mapper.Get(e)
		dx := float64(x - pos.X)
		dy := float64(y - pos.Y)
		if math.Sqrt(dx*dx+dy*dy) < float64(lantern.Size/2) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// RemoveAndRespawn destroys e and spawns its replacement on top of the stack.
func (s *Store) RemoveAndRespawn(e ecs.Entity) (ecs.Entity, bool) {
	s.remove(e)
	return s.Spawn()
}

func (s *Store) remove(e ecs.Entity) {
	idx := slices.Index(s.order, e)
	if idx < 0 {
		return
	}
	s.order = slices.Delete(s.order, idx, idx+1)
	s.world.RemoveEntity(e)
}

// ForEach calls fn for every lantern in insertion order.
// fn may mutate components but must not spawn, remove, or change targets.
func (s *Store) ForEach(fn func(i int, e ecs.Entity, v LanternView)) {
	for i, e := range s.order {
		fn(i, e, s.Get(e))
	}
}

// AssignTargets gives the i-th lantern the i-th target.
// Extra targets are ignored; lanterns without a target are left unchanged.
func (s *Store) AssignTargets(targets []components.Target) {
	for i, e := range s.order {
		if i >= len(targets) {
			return
		}
		t := targets[i]
		if s.targetMap.Has(e) {
			*s.targetMap.Get(e) = t
			continue
		}
		s.targetMap.Add(e, &t)
	}
}

// ClearTargets removes every lantern from the formation.
func (s *Store) ClearTargets() {
	for _, e := range s.order {
		if s.targetMap.Has(e) {
			s.targetMap.Remove(e)
		}
	}
}

func (s *Store) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}
