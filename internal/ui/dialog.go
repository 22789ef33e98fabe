package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and adds the application header with a title.
//
// Usage:
//
//	dialog := NewDialog("Start Task", NewTaskForm(...), devMode)
//	dialog.Init()       // Delegates to content.Init()
//	dialog.Update(msg)  // Delegates to content.Update(msg)
//	dialog.View()       // Returns header + content.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion, e.g. to read a
// form's result once it reports Completed.
func (d *Dialog) Content() tea.Model {
	return d.content
}
