package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/tally/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// TimerKeys defines key bindings that drive the timer
type TimerKeys struct {
	Checkpoint  key.Binding
	Description key.Binding
	Reset       key.Binding
	Stop        key.Binding
	SwitchTask  key.Binding
	TogglePause key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
	}
}

func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		Checkpoint:  buildBinding("checkpoint", defaults, customKeys),
		Description: buildBinding("description", defaults, customKeys),
		Reset:       buildBinding("reset", defaults, customKeys),
		Stop:        buildBinding("stop", defaults, customKeys),
		SwitchTask:  buildBinding("switch_task", defaults, customKeys),
		TogglePause: buildBinding("toggle_pause", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
	)
}
