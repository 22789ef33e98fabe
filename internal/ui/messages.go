package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/tally/internal/domain"
)

// timerEventMsg carries one timer event from the session context
type timerEventMsg struct {
	event domain.Event
}

// timerClosedMsg is sent when the session context shut down
type timerClosedMsg struct{}

// commandDoneMsg reports the outcome of a timer command run off the UI loop
type commandDoneMsg struct {
	action string
	err    error
}

// clearNoticeMsg clears the notice it was scheduled for
type clearNoticeMsg struct {
	generation int
}

// waitForEvent blocks on the subscription until the next event arrives
func waitForEvent(events <-chan domain.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return timerClosedMsg{}
		}
		return timerEventMsg{event: event}
	}
}
