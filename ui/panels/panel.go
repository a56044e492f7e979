// Package panels implements the battle action menu: the BattlePanel state
// machine and the Main, Fight and Target sub-panels it owns.
//
// BattlePanel is driven once per frame by its owner. While dormant it ignores
// input and draws nothing, so it is safe to call between turns.
package panels

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
)

// BattlePanel tracks which sub-panel is active and routes frames to it
type BattlePanel struct {
	alive  bool
	active State

	Battle  *BattleOptions
	Fight   *FightPanel
	Targets *TargetPanel
}

// New returns a dormant panel in the Main state.
func New() *BattlePanel {
	return &BattlePanel{
		active:  MainState(),
		Battle:  NewBattleOptions(),
		Fight:   NewFightPanel(),
		Targets: NewTargetPanel(),
	}
}

// Activate prepares the sub-panels for user and brings the panel to life
// on the Main state with every cursor on its first entry.
func (p *BattlePanel) Activate(user *battle.PokemonInstance) {
	p.Battle.Setup(user)
	p.Fight.User(user)
	p.Battle.Cursor = 0
	p.Fight.Moves.Cursor = 0
	p.Targets.Cursor = 0
	p.Spawn()
}

// UpdateTargets pushes the names of the potential targets to the Target
// sub-panel. The active state is left untouched.
func (p *BattlePanel) UpdateTargets(view battle.PlayerKnowable) {
	p.Targets.UpdateNames(view)
}

// Input routes one frame to the active sub-panel.
//
// Cancel is evaluated first and pops one level (Target to Fight, Fight to
// Main); the sub-panel that was active at the start of the frame still
// receives the frame afterwards. A Confirm press is reported back as a
// completed selection. Confirming a target takes the state, leaving Main
// behind, so a target selection is reported at most once.
func (p *BattlePanel) Input(f input.Frame, user *battle.PokemonInstance) (State, bool) {
	if !p.alive {
		return State{}, false
	}

	switch p.active.Kind() {
	case KindMain:
		p.Battle.Input(f)
		if f.Pressed(input.Confirm) {
			return MainState(), true
		}
	case KindFight:
		if f.Pressed(input.Cancel) {
			p.active = MainState()
		}
		p.Fight.Input(f, user)
		if f.Pressed(input.Confirm) {
			return FightState(), true
		}
	case KindTarget:
		if f.Pressed(input.Cancel) {
			p.active = FightState()
		}
		p.Targets.Input(f)
		if f.Pressed(input.Confirm) {
			return p.Take(), true
		}
	}
	return State{}, false
}

// Draw renders the active sub-panel. Nothing is drawn while dormant.
func (p *BattlePanel) Draw(c Canvas) {
	if !p.alive {
		return
	}
	switch p.active.Kind() {
	case KindMain:
		p.Battle.Draw(c)
	case KindFight:
		p.Fight.Draw(c)
	case KindTarget:
		p.Targets.Draw(c)
	}
}

// Active returns the current state.
func (p *BattlePanel) Active() State {
	return p.active
}

// Set switches the active sub-panel. Owners use it to descend after a
// completed Main or Fight selection.
func (p *BattlePanel) Set(s State) {
	p.active = s
}

// Take returns the current state and resets it to Main.
func (p *BattlePanel) Take() State {
	s := p.active
	p.active = MainState()
	return s
}

// Spawn makes the panel live on the Main state and resets the Fight sub-panel.
func (p *BattlePanel) Spawn() {
	p.alive = true
	p.active = MainState()
	p.Fight.Reset()
}

// Despawn makes the panel dormant. The active state is kept as is.
func (p *BattlePanel) Despawn() {
	p.alive = false
}

// Alive reports whether the panel is processing input.
func (p *BattlePanel) Alive() bool {
	return p.alive
}
