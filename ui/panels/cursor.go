package panels

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	frameTime   = float32(1.0 / 60)
	bobHeight   = float32(2)
	bobDuration = float32(0.4)
)

// cursorBob is the side-to-side bounce of a selection arrow.
// It advances one frame every time its panel processes input.
type cursorBob struct {
	tween   *gween.Tween
	offset  float32
	forward bool
}

func newCursorBob() *cursorBob {
	b := &cursorBob{}
	b.reset()
	return b
}

func (b *cursorBob) reset() {
	b.tween = gween.New(0, bobHeight, bobDuration, ease.InOutSine)
	b.offset = 0
	b.forward = true
}

func (b *cursorBob) update() {
	value, finished := b.tween.Update(frameTime)
	b.offset = value
	if !finished {
		return
	}
	b.forward = !b.forward
	if b.forward {
		b.tween = gween.New(0, bobHeight, bobDuration, ease.InOutSine)
	} else {
		b.tween = gween.New(bobHeight, 0, bobDuration, ease.InOutSine)
	}
}

// draw places the arrow to the left of a text origin.
func (b *cursorBob) draw(c Canvas, x, y float64) {
	c.Arrow(x-arrowGap+float64(b.offset), y)
}
