package panels

import "github.com/DoNotDoughnut/firecore-battle-gui/battle"

// Kind identifies which sub-panel a State selects
type Kind int

const (
	KindMain Kind = iota
	KindFight
	KindTarget
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "Main"
	case KindFight:
		return "Fight"
	case KindTarget:
		return "Target"
	}
	return "Unknown"
}

// State is the active sub-panel of a BattlePanel.
// Only the Target variant carries a payload: the target kind of the chosen
// move and, when the choice came from the bag, the item being used.
// The zero value is the Main state.
type State struct {
	kind   Kind
	target battle.MoveTarget
	item   *battle.ItemRef
}

// MainState returns the top-level options state.
func MainState() State {
	return State{kind: KindMain}
}

// FightState returns the move selection state.
func FightState() State {
	return State{kind: KindFight}
}

// TargetState returns the target selection state for a move or item.
func TargetState(target battle.MoveTarget, item *battle.ItemRef) State {
	return State{kind: KindTarget, target: target, item: item}
}

// Kind reports which variant the state is.
func (s State) Kind() Kind {
	return s.kind
}

// Target returns the Target payload. ok is false for Main and Fight.
func (s State) Target() (target battle.MoveTarget, item *battle.ItemRef, ok bool) {
	if s.kind != KindTarget {
		return 0, nil, false
	}
	return s.target, s.item, true
}

func (s State) String() string {
	if s.kind != KindTarget {
		return s.kind.String()
	}
	if s.item != nil {
		return "Target(" + s.target.String() + ", " + s.item.Name + ")"
	}
	return "Target(" + s.target.String() + ")"
}
