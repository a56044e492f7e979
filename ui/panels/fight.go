package panels

import (
	"fmt"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
)

const (
	movesWidth = 160.0
	movesLeft  = 16.0
	movesCol   = 72.0
	infoX      = 160.0
	infoWidth  = 80.0
	infoLeft   = 168.0
)

// FightPanel is the move selection sub-panel: the move grid plus an info box
// describing the highlighted move.
type FightPanel struct {
	Moves    *MovePanel
	Info     *MoveInfo
	ShowInfo bool
}

func NewFightPanel() *FightPanel {
	return &FightPanel{
		Moves:    NewMovePanel(),
		Info:     &MoveInfo{},
		ShowInfo: true,
	}
}

// User loads the moves of the acting Pokémon.
func (p *FightPanel) User(user *battle.PokemonInstance) {
	p.Moves.Update(user)
	p.Info.Update(p.Moves.Selected())
}

// Reset returns the cursor to the first move.
func (p *FightPanel) Reset() {
	p.Moves.Cursor = 0
	p.Moves.arrow.reset()
	p.Info.Update(p.Moves.Selected())
}

// Input navigates the moves. The info box follows the live PP of user.
func (p *FightPanel) Input(f input.Frame, user *battle.PokemonInstance) {
	p.Moves.Input(f)
	if user != nil {
		p.Info.Update(user.Move(p.Moves.Cursor))
	} else {
		p.Info.Update(p.Moves.Selected())
	}
}

func (p *FightPanel) Draw(c Canvas) {
	p.Moves.Draw(c)
	if p.ShowInfo {
		p.Info.Draw(c)
	}
}

// MovePanel is the two-by-two grid of known moves
type MovePanel struct {
	Cursor int

	moves []battle.MoveInstance
	arrow *cursorBob
}

func NewMovePanel() *MovePanel {
	return &MovePanel{arrow: newCursorBob()}
}

// Update snapshots the user's moves.
func (m *MovePanel) Update(user *battle.PokemonInstance) {
	m.moves = append(m.moves[:0], user.Moves...)
	if m.Cursor >= len(m.moves) {
		m.Cursor = 0
	}
}

// Names returns the move names in grid order.
func (m *MovePanel) Names() []string {
	names := make([]string, len(m.moves))
	for i, move := range m.moves {
		if move.Move != nil {
			names[i] = move.Move.Name
		}
	}
	return names
}

// Selected returns the highlighted move, or false when there are no moves.
func (m *MovePanel) Selected() (battle.MoveInstance, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.moves) {
		return battle.MoveInstance{}, false
	}
	return m.moves[m.Cursor], true
}

func (m *MovePanel) Input(f input.Frame) {
	m.Cursor = gridMove(m.Cursor, len(m.moves), f)
	m.arrow.update()
}

func (m *MovePanel) Draw(c Canvas) {
	c.Box(0, boxY, movesWidth, boxHeight)
	for i := 0; i < battle.MaxMoves; i++ {
		x, y := gridCell(i, movesLeft, movesCol)
		if i >= len(m.moves) || m.moves[i].Move == nil {
			c.Text("-", x, y, DisabledColor)
			continue
		}
		clr := TextColor
		if !m.moves[i].Usable() {
			clr = DisabledColor
		}
		c.Text(m.moves[i].Move.Name, x, y, clr)
		if i == m.Cursor {
			m.arrow.draw(c, x, y)
		}
	}
}

// MoveInfo shows the PP and type of the highlighted move
type MoveInfo struct {
	pp       string
	moveType string
	empty    bool
}

// Update shows move, or clears the box when ok is false.
func (i *MoveInfo) Update(move battle.MoveInstance, ok bool) {
	if !ok || move.Move == nil {
		*i = MoveInfo{}
		return
	}
	i.pp = fmt.Sprintf("PP %d/%d", move.PP, move.Move.PP)
	i.moveType = "TYPE/" + move.Move.Type
	i.empty = move.PP <= 0
}

// Lines returns the PP and type lines; both are empty when no move is shown.
func (i *MoveInfo) Lines() (pp, moveType string) {
	return i.pp, i.moveType
}

func (i *MoveInfo) Draw(c Canvas) {
	c.Box(infoX, boxY, infoWidth, boxHeight)
	if i.pp == "" {
		return
	}
	clr := TextColor
	if i.empty {
		clr = DisabledColor
	}
	c.Text(i.pp, infoLeft, lineOne, clr)
	c.Text(i.moveType, infoLeft, lineTwo, TextColor)
}
