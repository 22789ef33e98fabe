package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Timer") + "\n"
	content += renderBinding(keys.Timer.TogglePause)
	content += renderBinding(keys.Timer.Checkpoint)
	content += renderBinding(keys.Timer.Stop)
	content += renderBinding(keys.Timer.SwitchTask)
	content += renderBinding(keys.Timer.Description)
	content += renderBinding(keys.Timer.Reset)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help)
	content += renderBinding(keys.Application.Quit)
	content += renderBinding(keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("State Indicators (read-only)") + "\n"
	content += renderShortcut(domain.SymbolRunning, "clock running")
	content += renderShortcut(domain.SymbolPaused, "clock paused, time kept")
	content += renderShortcut(domain.SymbolIdle, "no task bound")

	content += "\n" + theme.HelpGroupStyle.Render("Saving") + "\n"
	content += renderShortcut("auto-save", "running time is checkpointed on the configured interval")
	content += renderShortcut("quit", "running time is checkpointed once on exit, paused time is not")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}
		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk to scroll")
	return h.viewport.View() + "\n\n" + footer
}
