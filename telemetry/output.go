package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/lanterns/config"
)

// OutputManager handles session output with CSV logging.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir         string
	eventFile   *os.File
	summaryFile *os.File
	perfFile    *os.File

	// Track if headers have been written
	eventHeaderWritten   bool
	summaryHeaderWritten bool
	perfHeaderWritten    bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	files := []struct {
		name string
		dst  **os.File
	}{
		{"events.csv", &om.eventFile},
		{"summary.csv", &om.summaryFile},
		{"perf.csv", &om.perfFile},
	}
	for _, spec := range files {
		f, err := os.Create(filepath.Join(dir, spec.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", spec.name, err)
		}
		*spec.dst = f
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvent appends one scene event to events.csv.
func (om *OutputManager) WriteEvent(rec EventRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.eventFile, &om.eventHeaderWritten, []EventRecord{rec}); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// WriteSummary appends a window summary to summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.summaryFile, &om.summaryHeaderWritten, []Summary{s}); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if err := writeRecords(om.perfFile, &om.perfHeaderWritten, records); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// writeRecords includes the header row only on the first write to f.
func writeRecords[T any](f *os.File, headerWritten *bool, records []T) error {
	if f == nil {
		return os.ErrClosed
	}
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files. Calling Close again is a no-op.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []**os.File{&om.eventFile, &om.summaryFile, &om.perfFile} {
		if *f == nil {
			continue
		}
		if err := (*f).Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		*f = nil
	}
	return firstErr
}
