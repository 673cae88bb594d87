// Lantern flicker preview tool - interactive glow tuning with sliders.
//
// Usage: go run ./cmd/flickerpreview [-config path]
package main

import (
	"flag"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lanterns/config"
	"github.com/pthm-cable/lanterns/renderer"
	"github.com/pthm-cable/lanterns/scene"
	"github.com/pthm-cable/lanterns/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewSize  = 480
	panelWidth   = windowWidth - previewSize - 30
	plotTicks    = 600
	plotHeight   = 90
)

// FlickerParams holds the previewed lantern settings
type FlickerParams struct {
	Seed      int64
	Intensity float32
	Size      float32
	Phase     float32
	Held      bool
}

func defaultParams() FlickerParams {
	return FlickerParams{
		Seed:      1,
		Intensity: systems.BaseGlow,
		Size:      (systems.MinLanternSize + systems.MaxLanternSize) / 2,
		Phase:     0,
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()
	config.MustInit(*configPath)
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Lantern Flicker Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	flicker := systems.NewFlicker(params.Seed)
	lanterns := renderer.NewLanternRenderer()
	defer lanterns.Unload()

	var tick int64
	paused := false
	c := cfg.Derived.Background
	bg := rl.Color{R: c[0], G: c[1], B: c[2], A: 255}

	for !rl.WindowShouldClose() {
		if !paused {
			tick++
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)

		// Preview lantern
		glow := flicker.Glow(params.Intensity, tick, params.Phase)
		frame := scene.Frame{
			Loaded: true,
			Lanterns: []scene.LanternState{{
				X:    10 + previewSize/2,
				Y:    10 + previewSize/2,
				Size: params.Size,
				Glow: glow,
				Held: params.Held,
			}},
		}
		lanterns.Draw(frame)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Factor plot over the next plotTicks ticks
		plotY := int32(previewSize + 20)
		rl.DrawRectangleLines(10, plotY, previewSize, plotHeight, rl.DarkGray)
		span := systems.FlickerMax - systems.FlickerMin
		var prevX, prevY int32
		for i := int64(0); i < plotTicks; i++ {
			f := flicker.Factor(tick+i, params.Phase)
			x := 10 + int32(i*previewSize/plotTicks)
			y := plotY + plotHeight - int32((f-systems.FlickerMin)/span*plotHeight)
			if i > 0 {
				rl.DrawLine(prevX, prevY, x, y, rl.Orange)
			}
			prevX, prevY = x, y
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Lantern Glow", int32(panelX), int32(panelY), 20, rl.LightGray)
		panelY += 35

		params.Intensity = slider(&panelY, panelX, "Base intensity", fmt.Sprintf("%.2f", params.Intensity),
			params.Intensity, 0.2, 2.0)
		params.Size = slider(&panelY, panelX, "Lantern size", fmt.Sprintf("%.0f", params.Size),
			params.Size, systems.MinLanternSize, systems.MaxLanternSize)
		params.Phase = slider(&panelY, panelX, "Flicker phase", fmt.Sprintf("%.0f", params.Phase),
			params.Phase, 0, 1000)

		newSeed := int64(slider(&panelY, panelX, "Seed", fmt.Sprintf("%d", params.Seed),
			float32(params.Seed), 0, 9999))
		if newSeed != params.Seed {
			params.Seed = newSeed
			flicker = systems.NewFlicker(params.Seed)
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Held, "Release", "Hold")) {
			params.Held = !params.Held
			if params.Held {
				params.Intensity = systems.HeldGlow
			} else {
				params.Intensity = systems.BaseGlow
			}
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 9999))
			flicker = systems.NewFlicker(params.Seed)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			flicker = systems.NewFlicker(params.Seed)
			tick = 0
		}
		panelY += 55

		// Live readout
		rl.DrawText(fmt.Sprintf("Tick: %d", tick), int32(panelX), int32(panelY), 16, rl.Gray)
		rl.DrawText(fmt.Sprintf("Factor: %.3f  Glow: %.3f", flicker.Factor(tick, params.Phase), glow),
			int32(panelX), int32(panelY+20), 16, rl.Gray)
		rl.DrawText(fmt.Sprintf("Band: [%.2f, %.2f] x intensity", systems.FlickerMin, systems.FlickerMax),
			int32(panelX), int32(panelY+40), 16, rl.Gray)

		rl.EndDrawing()
	}
}

// slider draws a labelled slider at *y, advances *y and returns the new value.
func slider(y *float32, x float32, label, readout string, value, lo, hi float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.0f", lo), fmt.Sprintf("%.0f", hi),
		value, lo, hi,
	)
	rl.DrawText(readout, int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.LightGray)
	*y += 35
	return v
}

func toggleText(cond bool, on, off string) string {
	if cond {
		return on
	}
	return off
}
