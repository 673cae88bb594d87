package game

import "log/slog"

// flushTelemetry emits a summary and perf record when the window elapses.
func (g *Game) flushTelemetry() {
	tick := g.scene.Tick()
	if !g.summaries || !g.collector.ShouldFlush(tick) {
		return
	}

	summary := g.collector.Flush(tick, g.scene.Store().Len(), g.scene.Mode())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		summary.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteSummary(summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, summary.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
