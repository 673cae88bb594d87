package renderer

import (
	"testing"

	"github.com/pthm-cable/lanterns/config"
)

func TestGlyphSet(t *testing.T) {
	runes := glyphSet([]string{"별\n빛", "별 a"})

	seen := make(map[rune]int)
	for _, r := range runes {
		seen[r]++
	}
	for _, r := range []rune{'별', '빛', 'a', ' ', '~'} {
		if seen[r] != 1 {
			t.Errorf("rune %q appears %d times, want 1", r, seen[r])
		}
	}
	if seen['\n'] != 0 {
		t.Error("newline included in glyph set")
	}
	if len(runes) != 95+2 {
		t.Errorf("glyph count = %d, want 97", len(runes))
	}
}

func TestUnsupportedGlyphs(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{"empty", nil, 0},
		{"ascii", []string{"Mona Lisa - Leonardo da Vinci", "Loading..."}, 0},
		{"hangul", []string{"별빛\n별"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unsupportedGlyphs(tt.texts); got != tt.want {
				t.Errorf("unsupportedGlyphs = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultTextsNeedCustomFont(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	texts := append([]string{cfg.Constellation.Message}, cfg.Captions...)
	if unsupportedGlyphs(texts) == 0 {
		t.Fatal("default overlay text should need glyphs beyond the default font")
	}
	if cfg.Derived.FontPath == "" {
		t.Error("defaults must name a font covering the overlay text")
	}
}
