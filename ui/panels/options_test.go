package panels

import (
	"testing"

	"github.com/DoNotDoughnut/firecore-battle-gui/input"
	"github.com/stretchr/testify/assert"
)

func TestBattleOptionsNavigation(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		press    input.Control
		expected Option
	}{
		{"right from fight", 0, input.Right, OptionBag},
		{"down from fight", 0, input.Down, OptionPokemon},
		{"down right corner", 1, input.Down, OptionRun},
		{"left from bag", 1, input.Left, OptionFight},
		{"up from run", 3, input.Up, OptionBag},
		{"no wrap left", 0, input.Left, OptionFight},
		{"no wrap up", 1, input.Up, OptionBag},
		{"no wrap right", 3, input.Right, OptionRun},
		{"no wrap down", 2, input.Down, OptionPokemon},
		{"confirm does not move", 2, input.Confirm, OptionPokemon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBattleOptions()
			b.Cursor = tt.start
			b.Input(input.Press(tt.press))
			assert.Equal(t, tt.expected, b.Option())
		})
	}
}

func TestBattleOptionsDraw(t *testing.T) {
	b := NewBattleOptions()
	b.Setup(pikachu())
	b.Cursor = 3

	canvas := &recordingCanvas{}
	b.Draw(canvas)

	assert.Equal(t, []string{"What will", "Pikachu do?", "FIGHT", "BAG", "POKEMON", "RUN"}, canvas.texts())
	assert.Equal(t, 1, canvas.arrows())
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "POKEMON", OptionPokemon.String())
	assert.Equal(t, "", Option(42).String())
}
