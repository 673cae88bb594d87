package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 800 {
		t.Errorf("screen = %dx%d, want 1280x800", cfg.Screen.Width, cfg.Screen.Height)
	}
	if len(cfg.Assets.Artworks) != 6 {
		t.Errorf("artworks = %d, want 6", len(cfg.Assets.Artworks))
	}
	if len(cfg.Captions) != 5 {
		t.Errorf("captions = %d, want 5", len(cfg.Captions))
	}
	if cfg.Derived.ToggleRune != 'h' {
		t.Errorf("toggle rune = %q, want 'h'", cfg.Derived.ToggleRune)
	}
	if cfg.Derived.FrameStep != time.Second/60 {
		t.Errorf("frame step = %v, want %v", cfg.Derived.FrameStep, time.Second/60)
	}
	if cfg.Derived.Background != [3]uint8{0x05, 0x0B, 0x1E} {
		t.Errorf("background = %v, want [5 11 30]", cfg.Derived.Background)
	}
	if got := cfg.Derived.ArtworkPath[0]; got != "paintings/starry-night.jpg" {
		t.Errorf("artwork path = %q", got)
	}
	if got := cfg.Derived.FontPath; got != "paintings/NanumGothic.ttf" {
		t.Errorf("font path = %q", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "screen:\n  width: 640\n  height: 480\ninput:\n  toggle_key: \"I\"\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("screen = %dx%d, want 640x480", cfg.Screen.Width, cfg.Screen.Height)
	}
	// Untouched sections keep their defaults
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("target fps = %d, want 60", cfg.Screen.TargetFPS)
	}
	if cfg.Derived.ToggleRune != 'i' {
		t.Errorf("toggle rune = %q, want 'i'", cfg.Derived.ToggleRune)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero width", "screen:\n  width: 0\n"},
		{"long toggle key", "input:\n  toggle_key: \"hh\"\n"},
		{"bad color", "screen:\n  background: \"blue\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if again.Constellation.Message != cfg.Constellation.Message {
		t.Errorf("message = %q, want %q", again.Constellation.Message, cfg.Constellation.Message)
	}
}

func TestFontPathUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("assets:\n  font: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Derived.FontPath != "" {
		t.Errorf("font path = %q, want empty", cfg.Derived.FontPath)
	}
}

func TestMustInit(t *testing.T) {
	MustInit("")
	if Cfg().Screen.Title != "Sky Lanterns" {
		t.Errorf("title = %q", Cfg().Screen.Title)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustInit with a missing file should panic")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "missing.yaml"))
}
