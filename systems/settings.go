package systems

import (
	"github.com/DoNotDoughnut/firecore-battle-gui/components"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the display hotkeys and persists any change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	if inpututil.IsKeyJustPressed(cfg.Settings.FullscreenKey) {
		settings.Fullscreen = !settings.Fullscreen
		settings.Dirty = true
		applyWindow(settings)
	}
	if inpututil.IsKeyJustPressed(cfg.Settings.ResolutionKey) && !settings.Fullscreen {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		settings.Dirty = true
		applyWindow(settings)
	}
	if inpututil.IsKeyJustPressed(cfg.Settings.MoveInfoKey) {
		settings.ShowMoveInfo = !settings.ShowMoveInfo
		settings.Dirty = true
	}

	if b, ok := components.Battle.First(e.World); ok {
		if gui := components.Battle.Get(b).Gui; gui != nil {
			gui.Panel.Fight.ShowInfo = settings.ShowMoveInfo
		}
	}

	if settings.Dirty {
		log.Info().
			Bool("fullscreen", settings.Fullscreen).
			Int("resolution", settings.ResolutionIndex).
			Bool("moveInfo", settings.ShowMoveInfo).
			Msg("settings changed")
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
			ShowMoveInfo:    cfg.Settings.ShowMoveInfo,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
