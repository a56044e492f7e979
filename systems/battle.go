package systems

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/components"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/ui"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// maxLogLines is how many committed actions the battle log keeps
const maxLogLines = 3

// NewBattle creates the Battle singleton. Only the first opponent starts revealed.
func NewBattle(e *ecs.ECS, party, opponents []*battle.PokemonInstance, bag []battle.ItemRef) *components.BattleData {
	if ent, ok := components.Battle.First(e.World); ok {
		e.World.Remove(ent.Entity())
	}

	revealed := make([]bool, len(opponents))
	if len(revealed) > 0 {
		revealed[0] = true
	}

	ent := e.World.Entry(e.World.Create(components.Battle))
	components.Battle.SetValue(ent, components.BattleData{
		Gui:       ui.NewBattleGui(bag),
		Party:     party,
		Opponents: opponents,
		Revealed:  revealed,
	})
	return components.Battle.Get(ent)
}

// GetBattle returns the Battle singleton if a battle is running.
func GetBattle(e *ecs.ECS) (*components.BattleData, bool) {
	ent, ok := components.Battle.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Battle.Get(ent), true
}

// UpdateBattle feeds this frame's input to the battle menu and starts the
// next turn once the player's actions are committed.
// Must run AFTER UpdateInput.
func UpdateBattle(e *ecs.ECS) {
	b, ok := GetBattle(e)
	if !ok {
		return
	}

	if !b.Gui.Waiting() {
		beginTurn(b)
	}

	before := b.Gui.Panel.Active()
	actions, done := b.Gui.Update(CurrentFrame(e))
	if after := b.Gui.Panel.Active(); cfg.Debug.LogSelections && after != before {
		log.Debug().Stringer("from", before).Stringer("to", after).Msg("panel state")
	}
	if !done {
		return
	}

	b.Turn++
	for _, a := range actions {
		log.Info().Int("turn", b.Turn).Str("action", a.String()).Msg("action committed")
		b.Log = append(b.Log, a.String())
	}
	if len(b.Log) > maxLogLines {
		b.Log = b.Log[len(b.Log)-maxLogLines:]
	}

	// Everything on the field has been seen by the end of a turn
	for i := range b.Revealed {
		b.Revealed[i] = true
	}
}

func beginTurn(b *components.BattleData) {
	b.Gui.Begin(b.Party, OpponentView(b))
	if actor, ok := b.Gui.Actor(); ok {
		log.Info().Int("turn", b.Turn+1).Str("actor", actor.Name()).Msg("awaiting action")
	}
}

// OpponentView returns what the player knows about the opposing side.
func OpponentView(b *components.BattleData) battle.PlayerKnowable {
	view := battle.PlayerKnowable{
		Name:   "Opponent",
		Active: make([]battle.PokemonView, len(b.Opponents)),
	}
	for i, p := range b.Opponents {
		if i < len(b.Revealed) && b.Revealed[i] {
			view.Active[i] = battle.KnownPokemon{Instance: p}
		}
	}
	return view
}
