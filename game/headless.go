package game

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/lanterns/scene"
)

// Scripted play timing. Each cycle starts with a burst of presses and then
// stays idle long enough for the constellation to form and dissolve.
const (
	scriptCycle      = 45 * time.Second
	scriptActive     = 10 * time.Second
	scriptPressEvery = 2 * time.Second
	scriptMinHold    = 500 * time.Millisecond
	scriptMaxHold    = 2500 * time.Millisecond // past the auto-release timeout
	scriptMissChance = 0.2
)

// scriptedPlayer stands in for a visitor when running headless.
type scriptedPlayer struct {
	rng *rand.Rand

	cycle, active, pressEvery int64
	minHold, maxHold          int64

	tick      int64
	holding   bool
	releaseAt int64
}

func newScriptedPlayer(rng *rand.Rand, step time.Duration) *scriptedPlayer {
	ticks := func(d time.Duration) int64 {
		return max(1, int64(d/step))
	}
	return &scriptedPlayer{
		rng:        rng,
		cycle:      ticks(scriptCycle),
		active:     ticks(scriptActive),
		pressEvery: ticks(scriptPressEvery),
		minHold:    ticks(scriptMinHold),
		maxHold:    ticks(scriptMaxHold),
	}
}

// Step issues this tick's input and advances the script by one tick.
func (p *scriptedPlayer) Step(sc *scene.Scene) {
	t := p.tick
	p.tick++

	if p.holding && t >= p.releaseAt {
		sc.PointerUp()
		p.holding = false
	}

	phase := t % p.cycle
	if phase >= p.active || phase%p.pressEvery != 0 {
		return
	}

	x, y := p.pickPoint(sc)
	sc.PointerDown(x, y)
	p.holding = true
	p.releaseAt = t + p.minHold + p.rng.Int63n(p.maxHold-p.minHold+1)
}

// pickPoint aims at a random lantern, or at empty sky now and then.
func (p *scriptedPlayer) pickPoint(sc *scene.Scene) (float32, float32) {
	store := sc.Store()
	if store.Len() == 0 || p.rng.Float64() < scriptMissChance {
		return p.rng.Float32() * store.Width(), p.rng.Float32() * store.Height()
	}
	e := store.Entities()[p.rng.Intn(store.Len())]
	v := store.Get(e)
	return v.Pos.X, v.Pos.Y
}
