package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/tally/internal/domain"
)

// ResetConfirm asks before elapsed time is thrown away
type ResetConfirm struct {
	Completed bool
	Confirmed bool
	form      *huh.Form
}

// NewResetConfirm creates the confirmation for the given snapshot
func NewResetConfirm(current domain.Snapshot) *ResetConfirm {
	rc := &ResetConfirm{}
	rc.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Discard %s on task #%s?", current.FormattedTime, current.TaskID)).
				Description("The time is not saved and cannot be recovered").
				Affirmative("Discard").
				Negative("Keep").
				Value(&rc.Confirmed),
		),
	)
	return rc
}

func (rc *ResetConfirm) Init() tea.Cmd {
	return rc.form.Init()
}

func (rc *ResetConfirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		rc.Confirmed = false
		rc.Completed = true
		return rc, nil
	}

	form, cmd := rc.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rc.form = f
	}
	if rc.form.State == huh.StateCompleted {
		rc.Completed = true
		return rc, nil
	}
	return rc, cmd
}

func (rc *ResetConfirm) View() string {
	return rc.form.View()
}
