package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Draw renders the current scene snapshot.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()
	frame := g.scene.Snapshot()

	rl.BeginDrawing()

	g.background.Draw(int32(g.screenWidth), int32(g.screenHeight))
	if frame.Loaded {
		g.lanterns.Draw(frame)
	}
	g.overlay.Draw(frame)
	g.instructions.Draw()

	rl.EndDrawing()
}
