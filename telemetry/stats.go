package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregated interaction statistics for a time window.
type Summary struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Lanterns int    `csv:"lanterns"`
	Mode     string `csv:"mode"`

	// Events during window
	Captures       int `csv:"captures"`
	Releases       int `csv:"releases"`
	AutoReleases   int `csv:"auto_releases"`
	Respawns       int `csv:"respawns"`
	Constellations int `csv:"constellations"`
	PointerExits   int `csv:"pointer_exits"`

	// Hold duration distribution in seconds
	HoldMean float64 `csv:"hold_mean"`
	HoldP50  float64 `csv:"hold_p50"`
	HoldP90  float64 `csv:"hold_p90"`
}

// Summarize returns the mean, median and 90th percentile of values.
// Returns zeros for an empty slice. values is not modified.
func Summarize(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("lanterns", s.Lanterns),
		slog.String("mode", s.Mode),
		slog.Int("captures", s.Captures),
		slog.Int("releases", s.Releases),
		slog.Int("auto_releases", s.AutoReleases),
		slog.Int("respawns", s.Respawns),
		slog.Int("constellations", s.Constellations),
		slog.Int("pointer_exits", s.PointerExits),
		slog.Float64("hold_mean", s.HoldMean),
		slog.Float64("hold_p50", s.HoldP50),
		slog.Float64("hold_p90", s.HoldP90),
	)
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("stats", "summary", s)
}
