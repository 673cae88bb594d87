package renderer

// Frame geometry relative to lantern size
const (
	FrameScale = 0.7 // square frame side / lantern size
	innerInset = 4   // inner frame line inset in pixels
)

// ContainFit scales an iw x ih image to fit inside a box x box square
// without cropping. Returns zero for degenerate input.
func ContainFit(iw, ih, box float32) (w, h float32) {
	if iw <= 0 || ih <= 0 || box <= 0 {
		return 0, 0
	}
	if iw >= ih {
		return box, box * ih / iw
	}
	return box * iw / ih, box
}
