// Package game wires the lantern scene to raylib, asset loading and telemetry.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lanterns/assets"
	"github.com/pthm-cable/lanterns/config"
	"github.com/pthm-cable/lanterns/renderer"
	"github.com/pthm-cable/lanterns/scene"
	"github.com/pthm-cable/lanterns/telemetry"
	"github.com/pthm-cable/lanterns/ui"
)

// headlessLoadTimeout bounds the synchronous artwork load in headless mode.
const headlessLoadTimeout = 30 * time.Second

// Game holds the complete session state.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	scene *scene.Scene

	// Clock: wall clock when windowed, fixed step when headless
	frameClock *scene.FrameClock

	// Asset loading
	loader     *assets.Loader
	cancelLoad context.CancelFunc
	loaded     []assets.Result // successful results awaiting FinishLoading

	// Rendering (nil when headless)
	background   *renderer.BackgroundRenderer
	lanterns     *renderer.LanternRenderer
	overlay      *renderer.OverlayRenderer
	instructions *ui.InstructionsPanel

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	summaries     bool

	// Headless
	headless       bool
	stepsPerUpdate int
	player         *scriptedPlayer

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a session. Windowed sessions must be created
// after rl.InitWindow; headless sessions load every artwork before returning.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.config()

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		headless:       opts.Headless,
		stepsPerUpdate: stepsPerUpdate,
		logStats:       opts.LogStats,
		summaries:      cfg.Telemetry.SummaryInterval > 0,
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		instructions:   ui.NewInstructionsPanel(20, 20, cfg.Derived.ToggleRune),
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}
	g.collector = telemetry.NewCollector(cfg.Telemetry.SummaryInterval, cfg.Derived.FrameStep, om)

	var clock scene.Clock
	if g.headless {
		g.frameClock = scene.NewFrameClock(cfg.Derived.FrameStep)
		clock = g.frameClock
		g.player = newScriptedPlayer(rand.New(rand.NewSource(opts.Seed+1)), cfg.Derived.FrameStep)
	} else {
		clock = scene.ClockFunc(func() time.Duration {
			return time.Duration(rl.GetTime() * float64(time.Second))
		})
		bg := cfg.Derived.Background
		g.background = renderer.NewBackgroundRenderer(bg[0], bg[1], bg[2])
		g.lanterns = renderer.NewLanternRenderer()
		texts := append([]string{cfg.Constellation.Message}, cfg.Captions...)
		g.overlay = renderer.NewOverlayRenderer(cfg.Derived.FontPath, texts...)
	}

	g.scene = scene.New(g.rng, clock, g.screenWidth, g.screenHeight, scene.Options{
		Captions:    cfg.Captions,
		Message:     cfg.Constellation.Message,
		ToggleKey:   cfg.Derived.ToggleRune,
		Toggler:     g.instructions,
		Observer:    g.collector,
		FlickerSeed: opts.Seed,
	})

	g.startLoading()
	if g.headless {
		if err := g.loadAll(); err != nil {
			g.Unload()
			return nil, err
		}
	}

	return g, nil
}

func (g *Game) startLoading() {
	entries := make([]assets.Entry, len(g.cfg.Assets.Artworks))
	for i, art := range g.cfg.Assets.Artworks {
		entries[i] = assets.Entry{
			Path:   g.cfg.Derived.ArtworkPath[i],
			Title:  art.Title,
			Artist: art.Artist,
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancelLoad = cancel
	g.loader = assets.NewLoader(entries)
	g.loader.Start(ctx)
	slog.Info("loading artworks", "count", len(entries), "dir", g.cfg.Assets.Dir)
}

// Update runs one windowed frame: input, asset uploads, one scene tick.
func (g *Game) Update() {
	p := g.perfCollector
	p.StartTick()

	p.StartPhase(telemetry.PhaseInput)
	g.readInput()

	p.StartPhase(telemetry.PhaseAssets)
	g.pollAssets()

	p.StartPhase(telemetry.PhaseScene)
	g.scene.Update()

	p.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	p.EndTick()
}

// UpdateHeadless runs StepsPerUpdate scene ticks with scripted input.
func (g *Game) UpdateHeadless() {
	p := g.perfCollector
	for i := 0; i < g.stepsPerUpdate; i++ {
		p.StartTick()

		p.StartPhase(telemetry.PhaseInput)
		g.player.Step(g.scene)

		p.StartPhase(telemetry.PhaseScene)
		g.frameClock.Step()
		g.scene.Update()

		p.StartPhase(telemetry.PhaseTelemetry)
		g.flushTelemetry()

		p.EndTick()
	}
}

// Scene exposes the running scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Tick returns the current scene tick.
func (g *Game) Tick() int64 {
	return g.scene.Tick()
}

// Unload stops loading and releases textures, fonts and output files.
func (g *Game) Unload() {
	if g.cancelLoad != nil {
		g.cancelLoad()
	}
	if g.lanterns != nil {
		g.lanterns.Unload()
	}
	if g.overlay != nil {
		g.overlay.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
