package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/tally/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Timer:       newTimerKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.TogglePause,
		k.Timer.Checkpoint,
		k.Timer.Stop,
		k.Timer.SwitchTask,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Timer.TogglePause,
			k.Timer.Checkpoint,
			k.Timer.Stop,
			k.Timer.SwitchTask,
			k.Timer.Description,
			k.Timer.Reset,
		},
		{
			k.Application.Help,
			k.Application.Quit,
			k.Application.ForceQuit,
		},
	}
}
