package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// DescriptionForm edits the note attached to the next saved time log
type DescriptionForm struct {
	Cancelled   bool
	Completed   bool
	description string
	form        *huh.Form
}

// NewDescriptionForm creates a form pre-filled with current
func NewDescriptionForm(current string) *DescriptionForm {
	df := &DescriptionForm{description: current}
	df.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Description").
				Description("Saved with the next time log").
				CharLimit(500).
				Value(&df.description),
		),
	)
	return df
}

func (df *DescriptionForm) Init() tea.Cmd {
	return df.form.Init()
}

func (df *DescriptionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		df.Cancelled = true
		df.Completed = true
		return df, nil
	}

	form, cmd := df.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		df.form = f
	}
	if df.form.State == huh.StateCompleted {
		df.Completed = true
		return df, nil
	}
	return df, cmd
}

func (df *DescriptionForm) View() string {
	return df.form.View()
}

// Description returns the edited text
func (df *DescriptionForm) Description() string {
	return df.description
}
