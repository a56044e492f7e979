// Package ui drives the battle action menu for the player's side of a turn.
package ui

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
	"github.com/DoNotDoughnut/firecore-battle-gui/ui/panels"
)

// BattleGui asks each of the player's active Pokémon for an action in turn.
// It owns the BattlePanel and decides where a completed Main or Fight
// selection leads; a completed Target selection or a terminal option commits
// the actor's action.
type BattleGui struct {
	Panel *panels.BattlePanel
	Bag   []battle.ItemRef

	party     []*battle.PokemonInstance
	slots     []int // party slots that choose this turn
	current   int
	targets   []int // party slot of each listed target, nil when aiming at opponents
	opponents battle.PlayerKnowable
	actions   []battle.Action
}

func NewBattleGui(bag []battle.ItemRef) *BattleGui {
	return &BattleGui{
		Panel: panels.New(),
		Bag:   bag,
	}
}

// Begin starts a new turn for the player's active Pokémon. party is indexed
// by field slot; empty and fainted slots are skipped.
func (g *BattleGui) Begin(party []*battle.PokemonInstance, opponents battle.PlayerKnowable) {
	g.party = party
	g.slots = g.slots[:0]
	for i, p := range party {
		if usable(p) {
			g.slots = append(g.slots, i)
		}
	}
	g.current = 0
	g.targets = nil
	g.actions = nil
	g.opponents = opponents

	if len(g.slots) == 0 {
		g.Panel.Despawn()
		return
	}
	g.activate()
}

// Actor returns the Pokémon currently choosing an action.
func (g *BattleGui) Actor() (*battle.PokemonInstance, bool) {
	if !g.Panel.Alive() || g.current >= len(g.slots) {
		return nil, false
	}
	return g.party[g.slots[g.current]], true
}

// Waiting reports whether the player still has to choose.
func (g *BattleGui) Waiting() bool {
	_, ok := g.Actor()
	return ok
}

// Update processes one frame. Once every actor has chosen, the turn's
// actions are returned with true and the panel goes dormant.
func (g *BattleGui) Update(f input.Frame) ([]battle.Action, bool) {
	user, ok := g.Actor()
	if !ok {
		return nil, false
	}

	selection, ok := g.Panel.Input(f, user)
	if !ok {
		return nil, false
	}

	switch selection.Kind() {
	case panels.KindMain:
		return g.selectOption(user)
	case panels.KindFight:
		return g.selectMove(user)
	case panels.KindTarget:
		return g.selectTarget(user, selection)
	}
	return nil, false
}

// Draw renders the battle menu.
func (g *BattleGui) Draw(c panels.Canvas) {
	g.Panel.Draw(c)
}

// Cancel abandons the current turn.
func (g *BattleGui) Cancel() {
	g.Panel.Despawn()
	g.slots = g.slots[:0]
	g.targets = nil
	g.actions = nil
	g.current = 0
}

func (g *BattleGui) selectOption(user *battle.PokemonInstance) ([]battle.Action, bool) {
	switch g.Panel.Battle.Option() {
	case panels.OptionFight:
		g.Panel.Set(panels.FightState())
	case panels.OptionBag:
		if len(g.Bag) == 0 {
			return nil, false
		}
		item := g.Bag[0]
		g.aim(battle.TargetUser, &item)
	case panels.OptionPokemon:
		return g.commit(battle.Action{Kind: battle.ActionSwitch, User: user})
	case panels.OptionRun:
		return g.commit(battle.Action{Kind: battle.ActionRun, User: user})
	}
	return nil, false
}

func (g *BattleGui) selectMove(user *battle.PokemonInstance) ([]battle.Action, bool) {
	index := g.Panel.Fight.Moves.Cursor
	move, ok := user.Move(index)
	if !ok || !move.Usable() {
		return nil, false
	}

	target := move.Move.Target
	if target.NeedsSelection() {
		// Stays in Fight when nobody can be aimed at
		g.aim(target, nil)
		return nil, false
	}

	action := battle.Action{
		Kind: battle.ActionMove,
		User: user,
		Move: index,
		Aim:  target,
	}
	if target == battle.TargetUser {
		action.Target = g.slots[g.current]
	}
	return g.commit(action)
}

func (g *BattleGui) selectTarget(user *battle.PokemonInstance, selection panels.State) ([]battle.Action, bool) {
	target, item, _ := selection.Target()
	action := battle.Action{
		Kind:   battle.ActionMove,
		User:   user,
		Target: g.Panel.Targets.Cursor,
		Aim:    target,
	}
	if g.targets != nil {
		if action.Target >= len(g.targets) {
			return nil, false
		}
		action.Target = g.targets[action.Target]
	}
	if item != nil {
		action.Kind = battle.ActionUseItem
		action.Item = item
	} else {
		action.Move = g.Panel.Fight.Moves.Cursor
	}
	return g.commit(action)
}

// aim lists the Pokémon target can reach and enters target selection.
// Nothing happens when the list would be empty.
func (g *BattleGui) aim(target battle.MoveTarget, item *battle.ItemRef) {
	switch target {
	case battle.TargetAlly, battle.TargetUser:
		view, slots := g.allies(target == battle.TargetAlly)
		if len(slots) == 0 {
			return
		}
		g.targets = slots
		g.Panel.UpdateTargets(view)
	default:
		if len(g.opponents.Active) == 0 {
			return
		}
		g.targets = nil
		g.Panel.UpdateTargets(g.opponents)
	}
	g.Panel.Set(panels.TargetState(target, item))
}

// allies lists the player's Pokémon still on the field together with their
// party slots. The current actor is left out when others is set.
func (g *BattleGui) allies(others bool) (battle.PlayerKnowable, []int) {
	var view battle.PlayerKnowable
	var slots []int
	self := g.slots[g.current]
	for i, p := range g.party {
		if !usable(p) || (others && i == self) {
			continue
		}
		view.Active = append(view.Active, battle.KnownPokemon{Instance: p})
		slots = append(slots, i)
	}
	return view, slots
}

func (g *BattleGui) commit(action battle.Action) ([]battle.Action, bool) {
	g.actions = append(g.actions, action)
	g.current++
	if g.current < len(g.slots) {
		g.activate()
		return nil, false
	}

	g.Panel.Despawn()
	actions := g.actions
	g.actions = nil
	return actions, true
}

func (g *BattleGui) activate() {
	g.targets = nil
	g.Panel.UpdateTargets(g.opponents)
	g.Panel.Activate(g.party[g.slots[g.current]])
}

func usable(p *battle.PokemonInstance) bool {
	return p != nil && !p.Fainted()
}
