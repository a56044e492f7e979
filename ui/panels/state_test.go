package panels

import (
	"testing"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/stretchr/testify/assert"
)

func TestZeroStateIsMain(t *testing.T) {
	var s State
	assert.Equal(t, MainState(), s)
	assert.Equal(t, KindMain, s.Kind())
}

func TestTargetPayload(t *testing.T) {
	item := battle.Items["x-attack"]

	tests := []struct {
		name   string
		state  State
		ok     bool
		target battle.MoveTarget
		item   *battle.ItemRef
		str    string
	}{
		{"main", MainState(), false, 0, nil, "Main"},
		{"fight", FightState(), false, 0, nil, "Fight"},
		{"move target", TargetState(battle.TargetOpponent, nil), true, battle.TargetOpponent, nil, "Target(Opponent)"},
		{"item target", TargetState(battle.TargetUser, &item), true, battle.TargetUser, &item, "Target(User, X Attack)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, gotItem, ok := tt.state.Target()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.item, gotItem)
			assert.Equal(t, tt.str, tt.state.String())
		})
	}
}
