package battle

// Moves is the demo move dex
var Moves = map[MoveID]*Move{
	"tackle":        {ID: "tackle", Name: "Tackle", Type: "Normal", PP: 35, Target: TargetOpponent},
	"growl":         {ID: "growl", Name: "Growl", Type: "Normal", PP: 40, Target: TargetAllOpponents},
	"thunder-shock": {ID: "thunder-shock", Name: "Thunder Shock", Type: "Electric", PP: 30, Target: TargetOpponent},
	"surf":          {ID: "surf", Name: "Surf", Type: "Water", PP: 15, Target: TargetAllOthers},
	"helping-hand":  {ID: "helping-hand", Name: "Helping Hand", Type: "Normal", PP: 20, Target: TargetAlly},
	"swords-dance":  {ID: "swords-dance", Name: "Swords Dance", Type: "Normal", PP: 20, Target: TargetUser},
	"vine-whip":     {ID: "vine-whip", Name: "Vine Whip", Type: "Grass", PP: 25, Target: TargetOpponent},
	"ember":         {ID: "ember", Name: "Ember", Type: "Fire", PP: 25, Target: TargetOpponent},
}

// Items is the demo item dex
var Items = map[ItemID]ItemRef{
	"potion":    {ID: "potion", Name: "Potion"},
	"full-heal": {ID: "full-heal", Name: "Full Heal"},
	"x-attack":  {ID: "x-attack", Name: "X Attack"},
}

// NewInstance builds a full-health Pokémon knowing the given dex moves.
// Unknown move IDs and moves past MaxMoves are skipped.
func NewInstance(species string, level, hp int, moves ...MoveID) *PokemonInstance {
	p := &PokemonInstance{
		Species: species,
		Level:   level,
		HP:      hp,
		MaxHP:   hp,
	}
	for _, id := range moves {
		if len(p.Moves) == MaxMoves {
			break
		}
		m, ok := Moves[id]
		if !ok {
			continue
		}
		p.Moves = append(p.Moves, MoveInstance{Move: m, PP: m.PP})
	}
	return p
}
