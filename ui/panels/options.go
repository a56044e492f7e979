package panels

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	"github.com/DoNotDoughnut/firecore-battle-gui/input"
)

// Option represents the top-level battle actions
type Option int

const (
	OptionFight Option = iota
	OptionBag
	OptionPokemon
	OptionRun
	optionCount
)

func (o Option) String() string {
	switch o {
	case OptionFight:
		return "FIGHT"
	case OptionBag:
		return "BAG"
	case OptionPokemon:
		return "POKEMON"
	case OptionRun:
		return "RUN"
	}
	return ""
}

const (
	optionsX     = 120.0
	optionsWidth = 120.0
	optionsLeft  = 138.0
	optionsCol   = 56.0
	promptX      = 11.0
)

// BattleOptions is the main sub-panel asking what the active Pokémon will do
type BattleOptions struct {
	Cursor int

	prompt [2]string
	arrow  *cursorBob
}

func NewBattleOptions() *BattleOptions {
	return &BattleOptions{arrow: newCursorBob()}
}

// Setup writes the prompt for the acting Pokémon.
func (b *BattleOptions) Setup(user *battle.PokemonInstance) {
	b.prompt = [2]string{"What will", user.Name() + " do?"}
}

// Prompt returns the two prompt lines.
func (b *BattleOptions) Prompt() [2]string {
	return b.prompt
}

// Option returns the highlighted option.
func (b *BattleOptions) Option() Option {
	return Option(b.Cursor)
}

func (b *BattleOptions) Input(f input.Frame) {
	b.Cursor = gridMove(b.Cursor, int(optionCount), f)
	b.arrow.update()
}

func (b *BattleOptions) Draw(c Canvas) {
	c.Box(0, boxY, optionsX, boxHeight)
	c.Text(b.prompt[0], promptX, lineOne, PromptColor)
	c.Text(b.prompt[1], promptX, lineTwo, PromptColor)

	c.Box(optionsX, boxY, optionsWidth, boxHeight)
	for i := 0; i < int(optionCount); i++ {
		x, y := gridCell(i, optionsLeft, optionsCol)
		c.Text(Option(i).String(), x, y, TextColor)
		if i == b.Cursor {
			b.arrow.draw(c, x, y)
		}
	}
}
