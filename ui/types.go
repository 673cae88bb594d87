// Package ui provides the on-screen panels drawn over the lantern scene.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	TitleColor    rl.Color
	TextColor     rl.Color
	HintColor     rl.Color
	Padding       int32
	LineHeight    int32
	FontSize      int32
	TitleFontSize int32
	ButtonHeight  int32
	MinPanelWidth int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 8, G: 14, B: 36, A: 200},
		PanelBorder:   rl.Color{R: 255, G: 210, B: 140, A: 120},
		TitleColor:    rl.Color{R: 255, G: 220, B: 160, A: 255},
		TextColor:     rl.Color{R: 230, G: 230, B: 240, A: 255},
		HintColor:     rl.Color{R: 160, G: 160, B: 180, A: 255},
		Padding:       14,
		LineHeight:    22,
		FontSize:      16,
		TitleFontSize: 22,
		ButtonHeight:  24,
		MinPanelWidth: 260,
	}
}
