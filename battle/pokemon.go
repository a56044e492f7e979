package battle

// MaxMoves is the number of moves a Pokémon can know
const MaxMoves = 4

// PokemonInstance is the acting Pokémon's snapshot handed to the battle UI
type PokemonInstance struct {
	Species  string
	Nickname string
	Level    int
	HP       int
	MaxHP    int
	Moves    []MoveInstance
}

// Name returns the nickname, falling back to the species name.
func (p *PokemonInstance) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species
}

// Move returns the move at index, or false when the slot is empty.
func (p *PokemonInstance) Move(index int) (MoveInstance, bool) {
	if index < 0 || index >= len(p.Moves) {
		return MoveInstance{}, false
	}
	return p.Moves[index], true
}

// Fainted reports whether the Pokémon can no longer act.
func (p *PokemonInstance) Fainted() bool {
	return p.HP <= 0
}

// PokemonView is what a player may know about another side's Pokémon
type PokemonView interface {
	Name() string
	Level() int
}

// KnownPokemon is a PokemonView over a revealed Pokémon
type KnownPokemon struct {
	Instance *PokemonInstance
}

func (k KnownPokemon) Name() string { return k.Instance.Name() }
func (k KnownPokemon) Level() int   { return k.Instance.Level }

// PlayerKnowable is the read-only view of a player's active Pokémon.
// A nil entry in Active is a slot whose occupant is not yet known.
type PlayerKnowable struct {
	Name   string
	Active []PokemonView
}
