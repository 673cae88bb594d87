package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lanterns/components"
)

func newTestStore(t *testing.T, w, h float32, arts int) *Store {
	t.Helper()
	s := NewStore(rand.New(rand.NewSource(7)), w, h)
	for i := 0; i < arts; i++ {
		s.AddArtwork(&components.Artwork{ID: i, Title: "Art", Artist: "Painter", Width: 400, Height: 300})
	}
	return s
}

func TestSpawnEmptyPool(t *testing.T) {
	s := newTestStore(t, 1280, 800, 0)

	for i := 0; i < 10; i++ {
		if _, ok := s.Spawn(); ok {
			t.Fatal("Spawn succeeded with no artworks")
		}
	}
	if s.Len() != 0 {
		t.Errorf("population = %d, want 0", s.Len())
	}
}

func TestSpawnRanges(t *testing.T) {
	const w, h = 1280, 800
	s := newTestStore(t, w, h, 3)

	for i := 0; i < 500; i++ {
		e, ok := s.Spawn()
		if !ok {
			t.Fatal("Spawn failed with artworks loaded")
		}
		v := s.Get(e)
		size := v.Lantern.Size

		if size < MinLanternSize || size > MaxLanternSize {
			t.Errorf("size %f outside [%f, %f]", size, MinLanternSize, MaxLanternSize)
		}
		if v.Vel.Y < MinRiseVY || v.Vel.Y > MaxRiseVY {
			t.Errorf("vy %f outside [%f, %f]", v.Vel.Y, MinRiseVY, MaxRiseVY)
		}
		if v.Pos.X < size-1e-3 || v.Pos.X > w-size+1e-3 {
			t.Errorf("x %f outside [%f, %f]", v.Pos.X, size, w-size)
		}
		if v.Pos.Y != h+size {
			t.Errorf("y = %f, want %f", v.Pos.Y, h+size)
		}
		if v.Lantern.Speed < MinRiseSpeed || v.Lantern.Speed > MaxRiseSpeed {
			t.Errorf("speed %f outside range", v.Lantern.Speed)
		}
		if v.Glow.Intensity != BaseGlow {
			t.Errorf("glow = %f, want %f", v.Glow.Intensity, BaseGlow)
		}
		if v.Lantern.Art == nil || v.Lantern.Label != "Art - Painter" {
			t.Errorf("unexpected art/label: %v %q", v.Lantern.Art, v.Lantern.Label)
		}
		if v.InConstellation() || v.Hold.Held {
			t.Error("fresh lantern should be floating and not held")
		}
	}
}

func TestSpawnNarrowCanvasCenters(t *testing.T) {
	s := newTestStore(t, 100, 800, 1)
	e, _ := s.Spawn()
	if x := s.Get(e).Pos.X; x != 50 {
		t.Errorf("x = %f, want 50 on a canvas narrower than two sizes", x)
	}
}

func TestSpawnUsesEveryArtwork(t *testing.T) {
	s := newTestStore(t, 1280, 800, 4)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		e, _ := s.Spawn()
		seen[s.Get(e).Lantern.Art.ID] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct artworks, want 4", len(seen))
	}
}

func TestQueryAtTopmostWins(t *testing.T) {
	s := newTestStore(t, 1280, 800, 1)
	first, _ := s.Spawn()
	second, _ := s.Spawn()

	// Stack both lanterns on the same point
	for _, e := range s.Entities() {
		v := s.Get(e)
		v.Pos.X, v.Pos.Y = 300, 300
	}

	got, ok := s.QueryAt(300, 300)
	if !ok || got != second {
		t.Errorf("QueryAt returned %v (ok=%v), want most recent %v", got, ok, second)
	}

	// Move the top lantern away; the lower one is hit
	s.Get(second).Pos.X = 900
	got, ok = s.QueryAt(300, 300)
	if !ok || got != first {
		t.Errorf("QueryAt returned %v (ok=%v), want %v", got, ok, first)
	}
}

func TestQueryAtRadius(t *testing.T) {
	s := newTestStore(t, 1280, 800, 1)
	e, _ := s.Spawn()
	v := s.Get(e)
	v.Pos.X, v.Pos.Y = 500, 400
	half := v.Lantern.Size / 2

	if _, ok := s.QueryAt(500+half*0.9, 400); !ok {
		t.Error("point inside half-size should hit")
	}
	if _, ok := s.QueryAt(500+half*1.05, 400); ok {
		t.Error("point beyond half-size should miss")
	}
	if _, ok := s.QueryAt(0, 0); ok {
		t.Error("far point should miss")
	}
}

func TestRemoveAndRespawnKeepsPopulation(t *testing.T) {
	s := newTestStore(t, 1280, 800, 2)
	for i := 0; i < 8; i++ {
		s.Spawn()
	}
	victim := s.Entities()[3]

	replacement, ok := s.RemoveAndRespawn(victim)
	if !ok {
		t.Fatal("respawn failed")
	}
	if s.Len() != 8 {
		t.Errorf("population = %d, want 8", s.Len())
	}
	if s.Alive(victim) {
		t.Error("removed lantern still alive")
	}
	if last := s.Entities()[s.Len()-1]; last != replacement {
		t.Error("replacement should be appended on top")
	}
}

func TestTargetsAssignAndClear(t *testing.T) {
	s := newTestStore(t, 1000, 800, 1)
	for i := 0; i < 4; i++ {
		s.Spawn()
	}

	targets := CircleTargets(s.Len(), s.Width(), s.Height())
	s.AssignTargets(targets)

	s.ForEach(func(i int, _ ecs.Entity, v LanternView) {
		if !v.InConstellation() {
			t.Fatalf("lantern %d has no target", i)
		}
		if *v.Target != targets[i] {
			t.Errorf("lantern %d target = %v, want %v", i, *v.Target, targets[i])
		}
	})

	s.ClearTargets()
	s.ForEach(func(i int, _ ecs.Entity, v LanternView) {
		if v.InConstellation() {
			t.Errorf("lantern %d still in constellation", i)
		}
	})
}

func TestSpawnDeterministic(t *testing.T) {
	a := newTestStore(t, 1280, 800, 3)
	b := newTestStore(t, 1280, 800, 3)
	for i := 0; i < 20; i++ {
		ea, _ := a.Spawn()
		eb, _ := b.Spawn()
		va, vb := a.Get(ea), b.Get(eb)
		if va.Pos.X != vb.Pos.X || va.Lantern.Art.ID != vb.Lantern.Art.ID {
			t.Fatalf("spawn %d differs between equal seeds", i)
		}
	}
}

func TestTargetsReassignAndPartial(t *testing.T) {
	s := newTestStore(t, 1000, 800, 1)
	for i := 0; i < 3; i++ {
		s.Spawn()
	}

	s.AssignTargets(CircleTargets(3, 1000, 800))
	// Second assignment overwrites in place; only the first lantern gets one
	moved := []components.Target{{X: 10, Y: 20}}
	s.ClearTargets()
	s.AssignTargets(CircleTargets(3, 1000, 800))
	s.AssignTargets(moved)

	first := s.Get(s.Entities()[0])
	if !first.InConstellation() || *first.Target != moved[0] {
		t.Fatalf("first target = %v, want %v", first.Target, moved[0])
	}
	if !s.Get(s.Entities()[1]).InConstellation() {
		t.Error("second lantern lost its target on partial reassignment")
	}

	s.ClearTargets()
	s.ClearTargets()
	for i, e := range s.Entities() {
		if s.Get(e).InConstellation() {
			t.Errorf("lantern %d still in constellation after clear", i)
		}
	}
}
