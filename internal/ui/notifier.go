package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarning
	noticeError
)

// Notifier holds the single status line shown under the timer and clears it
// after a delay. A newer notice is never cleared by an older notice's timer.
type Notifier struct {
	clearDelay time.Duration
	err        error
	generation int
	kind       noticeKind
	message    string
}

// NewNotifier creates a Notifier that clears notices after clearDelay
func NewNotifier(clearDelay time.Duration) *Notifier {
	return &Notifier{clearDelay: clearDelay}
}

// Info shows an acknowledgement
func (n *Notifier) Info(message string) tea.Cmd {
	return n.show(noticeInfo, message, nil)
}

// Warn shows a warning
func (n *Notifier) Warn(message string) tea.Cmd {
	return n.show(noticeWarning, message, nil)
}

// Error shows an error
func (n *Notifier) Error(err error) tea.Cmd {
	return n.show(noticeError, "", err)
}

func (n *Notifier) show(kind noticeKind, message string, err error) tea.Cmd {
	n.generation++
	n.kind = kind
	n.message = message
	n.err = err

	generation := n.generation
	return tea.Tick(n.clearDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{generation: generation}
	})
}

// Clear removes the notice if it is still the one msg was scheduled for
func (n *Notifier) Clear(msg clearNoticeMsg) {
	if msg.generation != n.generation {
		return
	}
	n.message = ""
	n.err = nil
}

// Dismiss removes the current notice immediately
func (n *Notifier) Dismiss() {
	n.generation++
	n.message = ""
	n.err = nil
}

// Active reports whether a notice is showing
func (n *Notifier) Active() bool {
	return n.message != "" || n.err != nil
}
