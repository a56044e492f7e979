package main

import (
	"image"
	"os"

	"github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/DoNotDoughnut/firecore-battle-gui/fonts"
	"github.com/DoNotDoughnut/firecore-battle-gui/scenes"
	"github.com/DoNotDoughnut/firecore-battle-gui/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.Panel.FontSize, config.Panel.FontSize-2); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewBattleScene(),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Debug.LogSelections {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	res := config.Settings.Resolutions[config.Settings.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal().Err(err).Msg("could not create game")
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}
