// Package config provides configuration loading and access for the lantern scene.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all presentation and session parameters.
// Motion and timing constants are fixed in the systems and scene packages.
type Config struct {
	Screen        ScreenConfig        `yaml:"screen"`
	Assets        AssetsConfig        `yaml:"assets"`
	Captions      []string            `yaml:"captions"`
	Constellation ConstellationConfig `yaml:"constellation"`
	Input         InputConfig         `yaml:"input"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // hex color, e.g. "#050B1E"
}

// AssetsConfig lists the artworks loaded at session start.
type AssetsConfig struct {
	Dir      string          `yaml:"dir"`
	Font     string          `yaml:"font"` // TTF under Dir covering caption glyphs; empty uses the raylib default font
	Artworks []ArtworkConfig `yaml:"artworks"`
}

// ArtworkConfig describes one painting file.
type ArtworkConfig struct {
	File   string `yaml:"file"`
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// ConstellationConfig holds the text shown during constellation mode.
type ConstellationConfig struct {
	Message string `yaml:"message"`
}

// InputConfig holds key bindings.
type InputConfig struct {
	ToggleKey string `yaml:"toggle_key"` // single character, case-insensitive
}

// TelemetryConfig holds session telemetry parameters.
type TelemetryConfig struct {
	SummaryInterval float64 `yaml:"summary_interval_sec"` // seconds between summary log lines (0 = off)
	PerfWindow      int     `yaml:"perf_window"`          // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32       // Screen.Width as float32
	ScreenH32   float32       // Screen.Height as float32
	FrameStep   time.Duration // 1 / Screen.TargetFPS
	ToggleRune  rune          // lower-cased Input.ToggleKey
	Background  [3]uint8      // parsed Screen.Background
	ArtworkPath []string      // Assets.Dir joined with each artwork file
	FontPath    string        // Assets.Dir joined with Assets.Font, empty if unset
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FrameStep = time.Second / time.Duration(c.Screen.TargetFPS)

	r, size := utf8.DecodeRuneInString(c.Input.ToggleKey)
	if size == 0 || size != len(c.Input.ToggleKey) {
		return fmt.Errorf("input.toggle_key must be a single character, got %q", c.Input.ToggleKey)
	}
	c.Derived.ToggleRune = unicode.ToLower(r)

	bg, err := parseHexColor(c.Screen.Background)
	if err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	c.Derived.Background = bg

	c.Derived.ArtworkPath = make([]string, len(c.Assets.Artworks))
	for i, art := range c.Assets.Artworks {
		c.Derived.ArtworkPath[i] = filepath.Join(c.Assets.Dir, art.File)
	}
	c.Derived.FontPath = ""
	if c.Assets.Font != "" {
		c.Derived.FontPath = filepath.Join(c.Assets.Dir, c.Assets.Font)
	}
	return nil
}

func parseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	for i := range rgb {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("parsing %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
