package renderer

import (
	"math"
	"testing"
)

func TestContainFit(t *testing.T) {
	tests := []struct {
		name   string
		iw, ih float32
		box    float32
		wantW  float32
		wantH  float32
	}{
		{"square", 500, 500, 70, 70, 70},
		{"landscape", 400, 200, 70, 70, 35},
		{"portrait", 300, 600, 84, 42, 84},
		{"tiny image scales up", 10, 5, 98, 98, 49},
		{"zero width", 0, 100, 70, 0, 0},
		{"zero box", 100, 100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ContainFit(tt.iw, tt.ih, tt.box)
			if math.Abs(float64(w-tt.wantW)) > 1e-4 || math.Abs(float64(h-tt.wantH)) > 1e-4 {
				t.Errorf("ContainFit(%v, %v, %v) = %v x %v, want %v x %v",
					tt.iw, tt.ih, tt.box, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestContainFitNeverExceedsBox(t *testing.T) {
	for iw := float32(1); iw <= 64; iw *= 2 {
		for ih := float32(1); ih <= 64; ih *= 2 {
			w, h := ContainFit(iw, ih, 100)
			if w > 100+1e-4 || h > 100+1e-4 {
				t.Fatalf("%vx%v fit to %vx%v exceeds box", iw, ih, w, h)
			}
			if w < 100-1e-4 && h < 100-1e-4 {
				t.Fatalf("%vx%v fit to %vx%v touches no edge", iw, ih, w, h)
			}
			// Aspect ratio is preserved
			if math.Abs(float64(w/h-iw/ih)) > 1e-4 {
				t.Fatalf("%vx%v fit to %vx%v changes aspect", iw, ih, w, h)
			}
		}
	}
}
