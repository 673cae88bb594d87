package game

import rl "github.com/gen2brain/raylib-go/raylib"

// readInput maps raylib mouse, keyboard and window events onto the scene.
func (g *Game) readInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		g.scene.Key(rune(c))
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		// Presses on the instructions panel belong to its buttons
		if !g.instructions.Contains(pos.X, pos.Y) {
			g.scene.PointerDown(pos.X, pos.Y)
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.scene.PointerUp()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.scene.Resize(w, h)
}
