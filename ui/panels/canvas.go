package panels

import (
	"image/color"

	"github.com/DoNotDoughnut/firecore-battle-gui/input"
)

// Canvas is the render context the panels draw into.
// Coordinates are in logical screen pixels.
type Canvas interface {
	// Box draws a framed panel background.
	Box(x, y, w, h float64)
	// Text draws a single line with its baseline at y.
	Text(s string, x, y float64, clr color.Color)
	// Arrow draws the selection cursor with its tip at (x, y).
	Arrow(x, y float64)
}

var (
	TextColor     = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	DisabledColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	PromptColor   = color.RGBA{R: 248, G: 248, B: 248, A: 255}
)

// Layout of the bottom battle box on the 240x160 logical screen
const (
	boxY      = 113.0
	boxHeight = 47.0
	lineOne   = 128.0
	lineTwo   = 144.0
	arrowGap  = 8.0
)

// gridMove moves a cursor inside a two-column grid of n entries laid out
// row by row. Moves that would leave the grid are ignored.
func gridMove(cursor, n int, f input.Frame) int {
	switch {
	case f.Pressed(input.Up):
		if cursor >= 2 {
			cursor -= 2
		}
	case f.Pressed(input.Down):
		if cursor+2 < n {
			cursor += 2
		}
	case f.Pressed(input.Left):
		if cursor%2 == 1 {
			cursor--
		}
	case f.Pressed(input.Right):
		if cursor%2 == 0 && cursor+1 < n {
			cursor++
		}
	}
	return cursor
}

// gridCell returns the text origin of entry i in a two-column grid.
func gridCell(i int, left, columnWidth float64) (x, y float64) {
	x = left + float64(i%2)*columnWidth
	y = lineOne
	if i >= 2 {
		y = lineTwo
	}
	return x, y
}
