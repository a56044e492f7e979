package battle

// MoveTarget describes which Pokémon a move or item may affect
type MoveTarget int

const (
	TargetOpponent MoveTarget = iota
	TargetAlly
	TargetAny
	TargetUser
	TargetAllOpponents
	TargetAllOthers
	TargetAll
)

// NeedsSelection reports whether the player has to pick a single target.
func (t MoveTarget) NeedsSelection() bool {
	switch t {
	case TargetOpponent, TargetAlly, TargetAny:
		return true
	}
	return false
}

func (t MoveTarget) String() string {
	switch t {
	case TargetOpponent:
		return "Opponent"
	case TargetAlly:
		return "Ally"
	case TargetAny:
		return "Any"
	case TargetUser:
		return "User"
	case TargetAllOpponents:
		return "AllOpponents"
	case TargetAllOthers:
		return "AllOthers"
	case TargetAll:
		return "All"
	}
	return "Unknown"
}

// MoveID identifies a move in the dex
type MoveID string

// Move is static move data
type Move struct {
	ID     MoveID
	Name   string
	Type   string
	PP     int
	Target MoveTarget
}

// MoveInstance is a move known by a Pokémon along with its remaining PP
type MoveInstance struct {
	Move *Move
	PP   int
}

// Usable reports whether the move still has PP left.
func (m MoveInstance) Usable() bool {
	return m.Move != nil && m.PP > 0
}

// ItemID identifies an item in the dex
type ItemID string

// ItemRef references an item chosen from the bag
type ItemRef struct {
	ID   ItemID
	Name string
}
