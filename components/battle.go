package components

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/ui"
	"github.com/yohamta/donburi"
)

// BattleData is the singleton holding the player's side of the battle
type BattleData struct {
	Gui       *ui.BattleGui
	Party     []*battle.PokemonInstance // Player's active Pokémon
	Opponents []*battle.PokemonInstance // Opposing active Pokémon
	Revealed  []bool                    // Whether each opponent has been seen
	Turn      int                       // Completed turns
	Log       []string                  // Most recent committed actions, newest last
}

var Battle = donburi.NewComponentType[BattleData]()
