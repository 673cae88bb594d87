package systems

import (
	"math"

	"github.com/pthm-cable/lanterns/components"
)

// FormationRadiusFactor scales min(width, height) into the constellation radius.
const FormationRadiusFactor = 0.3

// CircleTargets spaces n slots evenly on a circle centered on the canvas.
// Slot i sits at angle 2*pi*i/n.
func CircleTargets(n int, width, height float32) []components.Target {
	if n <= 0 {
		return nil
	}
	cx := float64(width) / 2
	cy := float64(height) / 2
	r := float64(min(width, height)) * FormationRadiusFactor

	targets := make([]components.Target, n)
	for i := range targets {
		angle := 2 * math.Pi * float64(i) / float64(n)
		targets[i] = components.Target{
			X: float32(cx + r*math.Cos(angle)),
			Y: float32(cy + r*math.Sin(angle)),
		}
	}
	return targets
}
