package scenes

import (
	"sync"

	"github.com/DoNotDoughnut/firecore-battle-gui/battle"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs a double battle against a fixed opposing side
type BattleScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewBattleScene creates a new battle scene
func NewBattleScene() *BattleScene {
	return &BattleScene{}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	if bs.ecs == nil {
		screen.Fill(cfg.Panel.BackgroundColor)
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	// Input must be polled before the battle menu reads it
	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.UpdateSettings)
	bs.ecs.AddSystem(systems.UpdateBattle)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawBattle)

	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved settings")
	}
	systems.ApplySavedSettings(bs.ecs, saved)

	party := []*battle.PokemonInstance{
		battle.NewInstance("Pikachu", 12, 35, "thunder-shock", "growl", "tackle", "helping-hand"),
		battle.NewInstance("Bulbasaur", 11, 33, "vine-whip", "tackle", "growl", "swords-dance"),
	}
	opponents := []*battle.PokemonInstance{
		battle.NewInstance("Charmander", 11, 31, "ember", "growl"),
		battle.NewInstance("Squirtle", 11, 32, "tackle", "surf"),
	}
	bag := []battle.ItemRef{battle.Items["potion"], battle.Items["full-heal"]}

	systems.NewBattle(bs.ecs, party, opponents, bag)
}
