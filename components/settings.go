package components

import (
	"encoding/json"

	"github.com/yohamta/donburi"
)

// SettingsData stores the user's display settings
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	ShowMoveInfo    bool
	Dirty           bool // Changed since last save
}

// Saved returns the part of the settings that is written to disk.
func (s *SettingsData) Saved() SavedSettings {
	return SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ShowMoveInfo:    s.ShowMoveInfo,
	}
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ShowMoveInfo    bool `json:"showMoveInfo"`
}

// ParseSavedSettings decodes data on top of defaults. Fields missing from the
// file keep their default value.
func ParseSavedSettings(data []byte, defaults SavedSettings) (*SavedSettings, error) {
	settings := defaults
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

var Settings = donburi.NewComponentType[SettingsData]()
