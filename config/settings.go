package config

import "github.com/hajimehoshi/ebiten/v2"

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains user-toggleable display settings
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	ShowMoveInfo           bool // Default for the PP/type box in the fight panel

	// Hotkeys
	FullscreenKey ebiten.Key
	ResolutionKey ebiten.Key
	MoveInfoKey   ebiten.Key
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 480, Height: 320, Label: "2x"},
			{Width: 720, Height: 480, Label: "3x"},
			{Width: 960, Height: 640, Label: "4x"},
		},
		DefaultResolutionIndex: 1,
		ShowMoveInfo:           true,

		FullscreenKey: ebiten.KeyF11,
		ResolutionKey: ebiten.KeyF10,
		MoveInfoKey:   ebiten.KeyI,
	}
}
