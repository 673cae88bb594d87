package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/lanterns/config"
	"github.com/pthm-cable/lanterns/scene"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}

	// Every method is a no-op on nil
	if err := om.WriteEvent(EventRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteSummary(Summary{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager has a directory")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	c := NewCollector(30, time.Second/60, om)
	c.Record(scene.Event{Type: scene.EventCapture, Tick: 5, At: 83 * time.Millisecond, Label: "Starry Night - Gogh"})
	c.Record(scene.Event{Type: scene.EventRelease, Tick: 40, HeldTicks: 35, Label: "Starry Night - Gogh"})

	if err := om.WriteSummary(c.Flush(60, 8, scene.ModeNormal)); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteSummary(c.Flush(120, 8, scene.ModeConstellation)); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	events := readLines(t, filepath.Join(dir, "events.csv"))
	if len(events) != 3 {
		t.Fatalf("events.csv has %d lines, want header + 2:\n%s", len(events), strings.Join(events, "\n"))
	}
	if !strings.HasPrefix(events[0], "tick,at_ms,type") {
		t.Errorf("events header = %q", events[0])
	}
	if !strings.Contains(events[1], "capture") || !strings.Contains(events[1], "Starry Night - Gogh") {
		t.Errorf("capture row = %q", events[1])
	}

	summaries := readLines(t, filepath.Join(dir, "summary.csv"))
	if len(summaries) != 3 {
		t.Fatalf("summary.csv has %d lines, want header + 2", len(summaries))
	}
	if strings.Count(strings.Join(summaries, "\n"), "window_end") != 1 {
		t.Error("header written more than once")
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	if err := config.Init(""); err != nil {
		t.Fatal(err)
	}
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(om.Dir(), "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}

func TestNewEventRecord(t *testing.T) {
	rec := NewEventRecord(scene.Event{
		Type:   scene.EventConstellationExit,
		Tick:   900,
		At:     1500 * time.Millisecond,
		Count:  8,
		Reason: scene.ExitIdle,
	})
	if rec.Type != "constellation_exit" || rec.AtMS != 1500 || rec.Reason != "idle" || rec.Count != 8 {
		t.Errorf("record = %+v", rec)
	}
}
