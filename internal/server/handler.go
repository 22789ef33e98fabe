package server

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ui"
)

// teaHandler attaches a new timer screen to each SSH session. All sessions
// observe and drive the same timer.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	select {
	case <-s.session.Done():
		return errorModel{domain.ErrClosed}, nil
	default:
	}

	model := ui.NewModel(s.session, s.modelOpts)

	// Quitting the program does not reach Update, so drop the
	// subscription when the connection goes away
	go func() {
		<-sess.Context().Done()
		model.Close()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"subscribers", s.session.Subscribers())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return tea.Quit
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
