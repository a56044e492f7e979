package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSavedSettings(t *testing.T) {
	defaults := SavedSettings{ResolutionIndex: 1, ShowMoveInfo: true}

	tests := []struct {
		name string
		data string
		want SavedSettings
	}{
		{
			name: "every field",
			data: `{"fullscreen":true,"resolutionIndex":2,"showMoveInfo":false}`,
			want: SavedSettings{Fullscreen: true, ResolutionIndex: 2, ShowMoveInfo: false},
		},
		{
			name: "file written before move info existed",
			data: `{"fullscreen":false,"resolutionIndex":0}`,
			want: SavedSettings{ResolutionIndex: 0, ShowMoveInfo: true},
		},
		{
			name: "empty object",
			data: `{}`,
			want: defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSavedSettings([]byte(tt.data), defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseSavedSettingsRejectsGarbage(t *testing.T) {
	_, err := ParseSavedSettings([]byte("not json"), SavedSettings{})
	assert.Error(t, err)
}

func TestSettingsDataSaved(t *testing.T) {
	s := SettingsData{Fullscreen: true, ResolutionIndex: 2, ShowMoveInfo: true, Dirty: true}

	assert.Equal(t, SavedSettings{Fullscreen: true, ResolutionIndex: 2, ShowMoveInfo: true}, s.Saved())
}
