package battle

import "fmt"

// ActionKind represents what a Pokémon will do this turn
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionUseItem
	ActionSwitch
	ActionRun
)

// Action is a committed decision for one acting Pokémon
type Action struct {
	Kind   ActionKind
	User   *PokemonInstance
	Move   int        // index into User.Moves for ActionMove
	Target int        // target slot for ActionMove/ActionUseItem
	Item   *ItemRef   // item for ActionUseItem
	Aim    MoveTarget // target kind the choice was made for
}

func (a Action) String() string {
	name := "?"
	if a.User != nil {
		name = a.User.Name()
	}
	switch a.Kind {
	case ActionMove:
		move := "?"
		if a.User != nil {
			if m, ok := a.User.Move(a.Move); ok && m.Move != nil {
				move = m.Move.Name
			}
		}
		return fmt.Sprintf("%s uses %s on %s #%d", name, move, a.Aim, a.Target)
	case ActionUseItem:
		item := "?"
		if a.Item != nil {
			item = a.Item.Name
		}
		return fmt.Sprintf("%s uses %s on %s #%d", name, item, a.Aim, a.Target)
	case ActionSwitch:
		return fmt.Sprintf("%s switches out", name)
	case ActionRun:
		return fmt.Sprintf("%s runs", name)
	}
	return name
}
