package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer state colors
const (
	ColorIdle    Color = "8" // Gray - no task bound
	ColorPaused  Color = "3" // Yellow - paused
	ColorRunning Color = "2" // Green - clock advancing
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - save acknowledgements
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - quit warning
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - idle hint keys
	ColorHintLabel Color = "178" // Gold - idle hint labels
)
