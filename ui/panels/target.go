package panels

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
)

const (
	targetsLeft = 16.0
	targetsCol  = 112.0
	maxTargets  = 4
	// UnknownTarget is shown for an opposing slot that has not been revealed
	UnknownTarget = "Unknown"
)

// TargetPanel lists the Pokémon a move or item can be aimed at
type TargetPanel struct {
	Cursor int

	names []string
	arrow *cursorBob
}

func NewTargetPanel() *TargetPanel {
	return &TargetPanel{arrow: newCursorBob()}
}

// UpdateNames replaces the listed names with the active Pokémon of view.
func (t *TargetPanel) UpdateNames(view battle.PlayerKnowable) {
	names := make([]string, 0, len(view.Active))
	for _, p := range view.Active {
		if p == nil {
			names = append(names, UnknownTarget)
			continue
		}
		names = append(names, p.Name())
	}
	t.names = names
	if t.Cursor >= t.visible() {
		t.Cursor = 0
	}
}

// Names returns the listed target names.
func (t *TargetPanel) Names() []string {
	return t.names
}

func (t *TargetPanel) Input(f input.Frame) {
	t.Cursor = gridMove(t.Cursor, t.visible(), f)
	t.arrow.update()
}

// visible is the number of names the panel has room to show.
func (t *TargetPanel) visible() int {
	return min(len(t.names), maxTargets)
}

func (t *TargetPanel) Draw(c Canvas) {
	c.Box(0, boxY, 240, boxHeight)
	for i, name := range t.names[:t.visible()] {
		x, y := gridCell(i, targetsLeft, targetsCol)
		c.Text(name, x, y, TextColor)
		if i == t.Cursor {
			t.arrow.draw(c, x, y)
		}
	}
}
