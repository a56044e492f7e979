package panels

import (
	"testing"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanelIsDormant(t *testing.T) {
	p := New()
	user := pikachu()

	assert.False(t, p.Alive())
	assert.Equal(t, KindMain, p.Active().Kind())

	frames := []input.Frame{
		{},
		input.Press(input.Confirm),
		input.Press(input.Cancel),
		input.Press(input.Down, input.Confirm),
	}
	for _, f := range frames {
		_, ok := p.Input(f, user)
		assert.False(t, ok)
	}

	canvas := &recordingCanvas{}
	p.Draw(canvas)
	assert.Empty(t, canvas.calls)
	assert.Equal(t, 0, p.Battle.Cursor, "dormant panel must not route input")
}

func TestActivate(t *testing.T) {
	p := New()
	p.Battle.Cursor = 3
	p.Fight.Moves.Cursor = 2
	p.Targets.Cursor = 1
	p.Set(TargetState(battle.TargetOpponent, nil))

	p.Activate(pikachu())

	assert.True(t, p.Alive())
	assert.Equal(t, MainState(), p.Active())
	assert.Equal(t, 0, p.Battle.Cursor)
	assert.Equal(t, 0, p.Fight.Moves.Cursor)
	assert.Equal(t, 0, p.Targets.Cursor)
	assert.Equal(t, [2]string{"What will", "Pikachu do?"}, p.Battle.Prompt())
	assert.Equal(t, []string{"Thunder Shock", "Growl", "Tackle", "Surf"}, p.Fight.Moves.Names())
}

func TestMainConfirmSignalsMain(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)

	got, ok := p.Input(input.Press(input.Confirm), user)

	require.True(t, ok)
	assert.Equal(t, KindMain, got.Kind())
	assert.Equal(t, KindMain, p.Active().Kind())
}

func TestMainRoutesInputToOptions(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)

	_, ok := p.Input(input.Press(input.Right), user)
	assert.False(t, ok)
	assert.Equal(t, OptionBag, p.Battle.Option())
	assert.Equal(t, 0, p.Fight.Moves.Cursor)
}

func TestMainCancelIsNoop(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)

	_, ok := p.Input(input.Press(input.Cancel), user)

	assert.False(t, ok)
	assert.Equal(t, MainState(), p.Active())
}

func TestFightCancelReturnsToMain(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(FightState())

	_, ok := p.Input(input.Press(input.Cancel), user)

	assert.False(t, ok)
	assert.Equal(t, MainState(), p.Active())
}

func TestFightCancelStillReachesFightPanel(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(FightState())

	_, ok := p.Input(input.Press(input.Cancel, input.Right), user)

	assert.False(t, ok)
	assert.Equal(t, KindMain, p.Active().Kind())
	assert.Equal(t, 1, p.Fight.Moves.Cursor, "fight panel receives the cancel frame")
	assert.Equal(t, 0, p.Battle.Cursor, "main panel does not receive the cancel frame")
}

func TestFightConfirmSignalsFight(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(FightState())

	got, ok := p.Input(input.Press(input.Confirm, input.Down), user)

	require.True(t, ok)
	assert.Equal(t, FightState(), got)
	assert.Equal(t, FightState(), p.Active())
	assert.Equal(t, 2, p.Fight.Moves.Cursor, "fight panel handles the frame before confirm is reported")
}

func TestFightCancelAndConfirmSameFrame(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(FightState())

	got, ok := p.Input(input.Press(input.Cancel, input.Confirm), user)

	require.True(t, ok)
	assert.Equal(t, KindFight, got.Kind())
	assert.Equal(t, KindMain, p.Active().Kind())
}

func TestTargetCancelReturnsToFight(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.UpdateTargets(opponents())
	p.Set(TargetState(battle.TargetOpponent, nil))

	_, ok := p.Input(input.Press(input.Cancel, input.Right), user)

	assert.False(t, ok)
	assert.Equal(t, FightState(), p.Active())
	assert.Equal(t, 1, p.Targets.Cursor, "target panel receives the cancel frame")

	// Fight does not advance to Target on its own
	got, ok := p.Input(input.Press(input.Confirm), user)
	require.True(t, ok)
	assert.Equal(t, FightState(), got)
	assert.Equal(t, FightState(), p.Active())
}

func TestTargetConfirmIsTakenOnce(t *testing.T) {
	p := New()
	user := pikachu()
	item := battle.Items["potion"]
	p.Activate(user)
	p.Set(TargetState(battle.TargetUser, &item))

	got, ok := p.Input(input.Press(input.Confirm), user)

	require.True(t, ok)
	target, gotItem, isTarget := got.Target()
	require.True(t, isTarget)
	assert.Equal(t, battle.TargetUser, target)
	require.NotNil(t, gotItem)
	assert.Equal(t, battle.ItemID("potion"), gotItem.ID)
	assert.Equal(t, MainState(), p.Active())

	again, ok := p.Input(input.Press(input.Confirm), user)
	require.True(t, ok)
	assert.Equal(t, KindMain, again.Kind(), "the target selection is not reported twice")
}

func TestTargetCancelAndConfirmSameFrame(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(TargetState(battle.TargetOpponent, nil))

	got, ok := p.Input(input.Press(input.Cancel, input.Confirm), user)

	require.True(t, ok)
	assert.Equal(t, FightState(), got)
	assert.Equal(t, MainState(), p.Active())
}

func TestSelectionScenario(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.UpdateTargets(opponents())

	got, ok := p.Input(input.Press(input.Confirm), user)
	require.True(t, ok)
	assert.Equal(t, MainState(), got)
	assert.Equal(t, MainState(), p.Active())

	p.Set(FightState())
	got, ok = p.Input(input.Press(input.Confirm, input.Right), user)
	require.True(t, ok)
	assert.Equal(t, FightState(), got)
	assert.Equal(t, 1, p.Fight.Moves.Cursor)

	p.Set(TargetState(battle.TargetOpponent, nil))
	got, ok = p.Input(input.Press(input.Confirm), user)
	require.True(t, ok)
	assert.Equal(t, TargetState(battle.TargetOpponent, nil), got)
	assert.Equal(t, MainState(), p.Active())

	_, ok = p.Input(input.Frame{}, user)
	assert.False(t, ok)
}

func TestDrawMatchesActiveState(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.UpdateTargets(opponents())

	tests := []struct {
		name     string
		state    State
		contains string
		absent   string
	}{
		{"main", MainState(), "FIGHT", "Thunder Shock"},
		{"fight", FightState(), "Thunder Shock", "FIGHT"},
		{"target", TargetState(battle.TargetOpponent, nil), "Squirtle", "Thunder Shock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Set(tt.state)
			canvas := &recordingCanvas{}
			p.Draw(canvas)

			assert.Contains(t, canvas.texts(), tt.contains)
			assert.NotContains(t, canvas.texts(), tt.absent)
			assert.Equal(t, 1, canvas.arrows(), "exactly one cursor is drawn")
		})
	}
}

func TestDespawnKeepsSelectionContext(t *testing.T) {
	p := New()
	user := pikachu()
	p.Activate(user)
	p.Set(TargetState(battle.TargetAlly, nil))

	p.Despawn()

	assert.False(t, p.Alive())
	assert.Equal(t, TargetState(battle.TargetAlly, nil), p.Active())

	_, ok := p.Input(input.Press(input.Confirm), user)
	assert.False(t, ok)

	canvas := &recordingCanvas{}
	p.Draw(canvas)
	assert.Empty(t, canvas.calls)
}

func TestUpdateTargetsKeepsState(t *testing.T) {
	p := New()
	p.Activate(pikachu())
	p.Set(FightState())

	p.UpdateTargets(opponents())

	assert.Equal(t, FightState(), p.Active())
	assert.Equal(t, []string{"Squirtle", UnknownTarget}, p.Targets.Names())
}

func TestReactivateForNextActor(t *testing.T) {
	p := New()
	first := pikachu()
	p.Activate(first)
	p.Set(FightState())
	p.Input(input.Press(input.Down), first)
	require.Equal(t, 2, p.Fight.Moves.Cursor)

	second := eevee()
	p.Activate(second)

	assert.Equal(t, MainState(), p.Active())
	assert.Equal(t, 0, p.Fight.Moves.Cursor)
	assert.Equal(t, []string{"Tackle", "Growl"}, p.Fight.Moves.Names())
	assert.Equal(t, [2]string{"What will", "Eevee do?"}, p.Battle.Prompt())
}

func TestTake(t *testing.T) {
	p := New()
	p.Set(TargetState(battle.TargetAny, nil))

	assert.Equal(t, TargetState(battle.TargetAny, nil), p.Take())
	assert.Equal(t, MainState(), p.Take())
}
