package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Model              ui.ModelOptions
	Port               int
}

// Server lets SSH clients attach terminals to the running timer
type Server struct {
	addr               string
	authorizedKeysPath string
	modelOpts          ui.ModelOptions
	session            *services.SessionContext
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance sharing session with every
// connected terminal
func NewServer(session *services.SessionContext, opts Options) (*Server, error) {
	s := &Server{
		addr:               net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		authorizedKeysPath: opts.AuthorizedKeysPath,
		modelOpts:          opts.Model,
		session:            session,
	}
	s.modelOpts.Remote = true

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.addr
}

// Start serves until ctx is cancelled or the session context closes, then
// shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	case <-s.session.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
