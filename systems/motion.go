package systems

import "math"

// Motion constants (per tick at 60 Hz)
const (
	FormationEase    float32 = 0.02 // fraction of remaining distance covered per tick
	SwayFrequency            = 0.01 // radians per tick
	SwayAmplitude    float32 = 0.3
	HoldReleaseTicks int32   = 90 // ~1.5s at 60fps
)

// StepResult reports lifecycle events produced by one motion step.
type StepResult struct {
	Released  bool // held lantern hit the hold timeout and was let go
	OffScreen bool // lantern drifted past the top edge and should be replaced
}

// StepLantern advances one lantern by one tick.
func StepLantern(v LanternView, tick int64) StepResult {
	var res StepResult

	if v.Target != nil {
		// Exponential approach; never lands exactly on the slot
		v.Pos.X += (v.Target.X - v.Pos.X) * FormationEase
		v.Pos.Y += (v.Target.Y - v.Pos.Y) * FormationEase
		return res
	}

	if !v.Hold.Held {
		v.Pos.Y += v.Vel.Y * v.Lantern.Speed
		v.Pos.X += float32(math.Sin(float64(tick)*SwayFrequency+float64(v.Lantern.SwayPhase))) * SwayAmplitude
		v.Hold.Ticks = 0
	} else {
		v.Hold.Ticks++
		if v.Hold.Ticks > HoldReleaseTicks {
			Release(v)
			res.Released = true
		}
	}

	if v.Pos.Y < -v.Lantern.Size*2 {
		res.OffScreen = true
	}
	return res
}

// Capture pins a lantern under the pointer.
func Capture(v LanternView) {
	v.Hold.Held = true
	v.Hold.Ticks = 0
	v.Hold.SavedVY = v.Vel.Y
	v.Vel.Y = 0
	v.Glow.Intensity = HeldGlow
}

// Release lets a held lantern resume its drift.
func Release(v LanternView) {
	v.Hold.Held = false
	v.Vel.Y = v.Hold.SavedVY
	v.Glow.Intensity = BaseGlow
}
