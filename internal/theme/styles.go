package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tally/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(13)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer display styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	HoursStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	IdleIconStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	PausedIconStyle = lipgloss.NewStyle().
			Foreground(ColorPaused)

	RunningIconStyle = lipgloss.NewStyle().
				Foreground(ColorRunning)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Idle hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Notification styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// StateIconStyle returns the icon style for a timer state
func StateIconStyle(state domain.SessionState) lipgloss.Style {
	switch state {
	case domain.StateRunning:
		return RunningIconStyle
	case domain.StatePaused:
		return PausedIconStyle
	default:
		return IdleIconStyle
	}
}
