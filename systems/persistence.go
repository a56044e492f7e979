package systems

import (
	"encoding/json"
	"fmt"

	"github.com/DoNotDoughnut/firecore-battle-gui/components"
	cfg "github.com/DoNotDoughnut/firecore-battle-gui/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings = components.SavedSettings

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "firecore-battle-gui",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	settings, err := components.ParseSavedSettings(data, DefaultSavedSettings())
	if err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return settings, nil
}

// DefaultSavedSettings returns the settings used before anything is saved
func DefaultSavedSettings() SavedSettings {
	return SavedSettings{
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		ShowMoveInfo:    cfg.Settings.ShowMoveInfo,
	}
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the values held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := s.Saved()
	s.Dirty = false
	if err := SaveSettings(&saved); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettings copies loaded settings into the Settings component
// and applies them to the window
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.Fullscreen = saved.Fullscreen
	settings.ShowMoveInfo = saved.ShowMoveInfo
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = saved.ResolutionIndex
	}
	applyWindow(settings)
}

// ApplySavedSettingsGlobal applies window settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	applyWindow(&components.SettingsData{
		Fullscreen:      saved.Fullscreen,
		ResolutionIndex: saved.ResolutionIndex,
	})
}

func applyWindow(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)

	// Resolution only applies when windowed
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
