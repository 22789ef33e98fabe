package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/theme"
)

const defaultViewWidth = 80

func stateLabel(state domain.SessionState) string {
	switch state {
	case domain.StateRunning:
		return "Running"
	case domain.StatePaused:
		return "Paused"
	default:
		return "Idle"
	}
}

func (m *Model) renderTimer() string {
	snap := m.snapshot
	width := m.width
	if width <= 0 {
		width = defaultViewWidth
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")

	icon := theme.StateIconStyle(snap.State).Render(snap.Symbol())
	b.WriteString(icon + " " + theme.NormalStyle.Render(stateLabel(snap.State)))
	if m.remote {
		b.WriteString(theme.HelpStyle.Render(fmt.Sprintf("  (shared, %d attached)", m.session.Subscribers())))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.ClockStyle.Render(snap.FormattedTime))
	b.WriteString("\n")

	if snap.TaskID.IsZero() {
		b.WriteString(theme.HintLabelStyle.Render("No task. Press "))
		b.WriteString(theme.HintKeyStyle.Render(m.keys.Timer.SwitchTask.Help().Key))
		b.WriteString(theme.HintLabelStyle.Render(" to start one."))
		b.WriteString("\n")
	} else {
		b.WriteString(renderField("Task", "#"+snap.TaskID.String()))
		b.WriteString(renderField("Hours", theme.HoursStyle.Render(domain.FormatHours(snap.TimeInHours))))
		description := snap.Description
		if description == "" {
			description = theme.HelpStyle.Render("(none)")
		}
		b.WriteString(renderField("Note", description))
	}

	b.WriteString("\n")
	if notice := m.renderNotice(width); notice != "" {
		b.WriteString(notice)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderField(label, value string) string {
	return theme.LabelStyle.Render(fmt.Sprintf("%-6s", label)) + " " + value + "\n"
}

func (m *Model) renderNotice(width int) string {
	n := m.notifier
	if !n.Active() {
		return ""
	}
	switch n.kind {
	case noticeError:
		if n.err != nil {
			return theme.ErrorStyle.Render(formatErrorForDisplay(n.err, width))
		}
		return theme.ErrorStyle.Render(n.message)
	case noticeWarning:
		return theme.WarningStyle.Render(n.message)
	default:
		return theme.SuccessStyle.Render(n.message)
	}
}
