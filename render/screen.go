// Package render draws the battle UI onto an ebiten image.
package render

import (
	"image/color"

	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Cached nine-slices for panel boxes (lazy initialized)
var (
	borderSlice *image.NineSlice
	fillSlice   *image.NineSlice
)

// Screen implements panels.Canvas on top of an ebiten image
type Screen struct {
	dst   *ebiten.Image
	face  font.Face
	small font.Face
}

func NewScreen(dst *ebiten.Image) *Screen {
	if borderSlice == nil {
		borderSlice = image.NewNineSliceColor(cfg.Panel.BorderColor)
		fillSlice = image.NewNineSliceColor(cfg.Panel.BoxColor)
	}
	return &Screen{dst: dst, face: fonts.Battle.Get(), small: fonts.Small.Get()}
}

// Box draws a bordered panel.
func (s *Screen) Box(x, y, w, h float64) {
	border := float64(cfg.Panel.BorderWidth)
	s.slice(borderSlice, x, y, w, h)
	s.slice(fillSlice, x+border, y+border, w-2*border, h-2*border)
}

func (s *Screen) slice(n *image.NineSlice, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	n.Draw(s.dst, int(w), int(h), func(opts *ebiten.DrawImageOptions) {
		opts.GeoM.Translate(x, y)
	})
}

// Text draws s with its baseline at y.
func (s *Screen) Text(str string, x, y float64, clr color.Color) {
	text.Draw(s.dst, str, s.face, int(x), int(y), clr) //nolint:staticcheck // TODO: migrate to text/v2
}

// SmallText draws s in the small face, for hints and debug overlays.
func (s *Screen) SmallText(str string, x, y float64, clr color.Color) {
	text.Draw(s.dst, str, s.small, int(x), int(y), clr) //nolint:staticcheck // TODO: migrate to text/v2
}

// Arrow draws a right-pointing cursor whose tip sits at x, centred on the
// text line ending at baseline y.
func (s *Screen) Arrow(x, y float64) {
	size := cfg.Panel.ArrowSize
	tipX := float32(x)
	midY := float32(y) - size
	for row := -size + 1; row < size; row++ {
		width := size - abs(row)
		vector.FillRect(s.dst, tipX-width, midY+row, width, 1, cfg.Panel.ArrowColor, false)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
