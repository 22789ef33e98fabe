package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/config"
)

func TestGetValidKeyNames_Sorted(t *testing.T) {
	names := GetValidKeyNames()
	require.Len(t, names, len(AllKeyDefinitions))
	assert.IsIncreasing(t, names)
}

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys.Timer.TogglePause))
	assert.Equal(t, "space", keys.Timer.TogglePause.Help().Key)
	assert.Equal(t, "?/h", keys.Application.Help.Help().Key)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, keys.Timer.Checkpoint))
}

func TestNewKeyMap_CustomOverridesDefault(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"checkpoint": {"c", "w"}})

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, keys.Timer.Checkpoint))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, keys.Timer.Checkpoint))
	assert.Equal(t, "c/w", keys.Timer.Checkpoint.Help().Key)
}

func TestKeyBindingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		keys    config.KeyBindingsConfig
		wantErr string
	}{
		{name: "nil", keys: nil},
		{name: "valid override", keys: config.KeyBindingsConfig{"stop": {"X"}}},
		{name: "unknown name", keys: config.KeyBindingsConfig{"kill": {"k"}}, wantErr: "unknown key binding"},
		{
			name:    "duplicate key",
			keys:    config.KeyBindingsConfig{"stop": {"z"}, "reset": {"z"}},
			wantErr: "is assigned to both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(GetValidKeyNames())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShortHelpIsSubsetOfFullHelp(t *testing.T) {
	keys := NewKeyMap(nil)

	full := map[string]bool{}
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			full[b.Help().Desc] = true
		}
	}
	for _, b := range keys.ShortHelp() {
		assert.True(t, full[b.Help().Desc], b.Help().Desc)
	}
}
