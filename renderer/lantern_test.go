package renderer

import (
	"math"
	"testing"
)

func TestGlowRings(t *testing.T) {
	tests := []struct {
		name       string
		layer      int
		ring       int
		size, glow float32
		wantRadius float32
		wantAlpha  uint8
	}{
		{"halo outer", 0, 0, 100, 1, 125, 8},
		{"halo inner", 0, 3, 100, 1, 80, 2},
		{"bloom dimmed", 1, 2, 100, 0.6, 33, 3},
		{"core", 2, 1, 120, 1, 45, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, a := glowLayers[tt.layer].ring(tt.ring, tt.size, tt.glow)
			if math.Abs(float64(r-tt.wantRadius)) > 1e-3 {
				t.Errorf("radius = %f, want %f", r, tt.wantRadius)
			}
			if a != tt.wantAlpha {
				t.Errorf("alpha = %d, want %d", a, tt.wantAlpha)
			}
		})
	}
}

func TestGlowLayersShrinkInward(t *testing.T) {
	prev := float32(math.MaxFloat32)
	for li, layer := range glowLayers {
		if layer.held.G <= layer.normal.G || layer.held.B <= layer.normal.B {
			t.Errorf("layer %d held color %v not warmer than %v", li, layer.held, layer.normal)
		}
		for i := 0; i < layer.count; i++ {
			r, _ := layer.ring(i, 100, 1)
			if r <= 0 {
				t.Errorf("layer %d ring %d radius %f", li, i, r)
			}
			if i == 0 && r >= prev {
				t.Errorf("layer %d starts at %f, not inside previous layer %f", li, r, prev)
			}
			prev = r
		}
	}
}
