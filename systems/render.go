package systems

import (
	"fmt"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/render"
	"github.com/DoNotDoughnut/firecore-battle-gui/ui/panels"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Status box positions on the 240x160 logical screen
const (
	opponentStatusX = 8.0
	opponentStatusY = 8.0
	partyStatusX    = 128.0
	partyStatusY    = 64.0
	statusWidth     = 104.0
	statusHeight    = 30.0
	logY            = 106.0
	hintY           = 12.0
)

// DrawBattle renders the field status boxes, the battle log and the action menu.
func DrawBattle(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Panel.BackgroundColor)

	b, ok := GetBattle(e)
	if !ok {
		return
	}

	canvas := render.NewScreen(screen)

	view := OpponentView(b)
	for i, p := range view.Active {
		y := opponentStatusY + float64(i)*(statusHeight+2)
		if p == nil {
			drawStatus(canvas, opponentStatusX, y, "???", "")
			continue
		}
		drawStatus(canvas, opponentStatusX, y, fmt.Sprintf("%s Lv%d", p.Name(), p.Level()), "")
	}
	for i, p := range b.Party {
		y := partyStatusY - float64(i)*(statusHeight+2)
		drawStatus(canvas, partyStatusX, y, fmt.Sprintf("%s Lv%d", p.Name(), p.Level), hpLine(p))
	}

	if len(b.Log) > 0 {
		canvas.Text(b.Log[len(b.Log)-1], opponentStatusX, logY, panels.TextColor)
	}

	b.Gui.Draw(canvas)

	if b.Gui.Waiting() {
		canvas.SmallText(LastInputMethod(e).Hint(), partyStatusX, hintY, panels.TextColor)
	}
	if cfg.Debug.ShowState {
		canvas.SmallText(b.Gui.Panel.Active().String(), partyStatusX, hintY+10, cfg.Crimson)
	}
}

func drawStatus(c panels.Canvas, x, y float64, title, hp string) {
	c.Box(x, y, statusWidth, statusHeight)
	c.Text(title, x+6, y+12, panels.TextColor)
	if hp != "" {
		c.Text(hp, x+6, y+24, panels.TextColor)
	}
}

func hpLine(p *battle.PokemonInstance) string {
	return fmt.Sprintf("HP %d/%d", p.HP, p.MaxHP)
}
