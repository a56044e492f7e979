package panels

import (
	"image/color"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
)

type drawCall struct {
	op   string
	text string
	x, y float64
}

type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) Box(x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{op: "box", x: x, y: y})
}

func (r *recordingCanvas) Text(s string, x, y float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "text", text: s, x: x, y: y})
}

func (r *recordingCanvas) Arrow(x, y float64) {
	r.calls = append(r.calls, drawCall{op: "arrow", x: x, y: y})
}

func (r *recordingCanvas) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func (r *recordingCanvas) arrows() int {
	n := 0
	for _, c := range r.calls {
		if c.op == "arrow" {
			n++
		}
	}
	return n
}

func pikachu() *battle.PokemonInstance {
	return battle.NewInstance("Pikachu", 12, 35, "thunder-shock", "growl", "tackle", "surf")
}

func eevee() *battle.PokemonInstance {
	return battle.NewInstance("Eevee", 9, 30, "tackle", "growl")
}

func opponents() battle.PlayerKnowable {
	return battle.PlayerKnowable{
		Name: "Rival",
		Active: []battle.PokemonView{
			battle.KnownPokemon{Instance: battle.NewInstance("Squirtle", 10, 32, "tackle")},
			nil,
		},
	}
}
