package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int // Logical screen width
	Height int // Logical screen height
	Title  string
}

// PanelConfig contains the battle box render configuration
type PanelConfig struct {
	BackgroundColor color.RGBA // Behind the battle box
	BoxColor        color.RGBA // Panel fill
	BorderColor     color.RGBA // Panel frame
	BorderWidth     float32
	ArrowColor      color.RGBA
	ArrowSize       float32
	FontSize        float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogSelections bool // Log every completed panel selection
	ShowState     bool // Draw the active panel state in the corner
}

// Global configuration instances
var C *Config
var Panel PanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 248, G: 248, B: 248, A: 255}
	DarkGray  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Crimson   = color.RGBA{R: 200, G: 48, B: 48, A: 255}
	SlateBlue = color.RGBA{R: 40, G: 80, B: 104, A: 255}
	Sky       = color.RGBA{R: 176, G: 216, B: 240, A: 255}
)

func init() {
	C = &Config{
		Width:  240,
		Height: 160,
		Title:  "Battle",
	}

	Panel = PanelConfig{
		BackgroundColor: Sky,
		BoxColor:        White,
		BorderColor:     SlateBlue,
		BorderWidth:     2,
		ArrowColor:      DarkGray,
		ArrowSize:       4,
		FontSize:        8,
	}

	Debug = DebugConfig{
		LogSelections: true,
		ShowState:     false,
	}
}
