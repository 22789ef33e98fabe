package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/server"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	AutoSave     bool   `help:"Save elapsed time periodically while running" default:"true" negatable:"" env:"TALLY_AUTO_SAVE"`
	Host         string `help:"Host to bind to" default:"localhost" env:"TALLY_SSH_HOST"`
	Port         int    `help:"Port to listen on" default:"23234" env:"TALLY_SSH_PORT"`
	SaveInterval int    `help:"Minutes between automatic saves" default:"30" env:"TALLY_SAVE_INTERVAL"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.loadedSettings()
	s.applySettings(settings)

	if s.SaveInterval < 1 {
		return fmt.Errorf("save interval must be at least 1 minute, got %d", s.SaveInterval)
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	opts := services.DefaultTimerOptions()
	opts.AutoSave = s.AutoSave
	opts.SaveInterval = time.Duration(s.SaveInterval) * time.Minute

	session, err := cli.Container.OpenSession(opts)
	if err != nil {
		return err
	}

	confirmReset := settings.ConfirmReset == nil || *settings.ConfirmReset
	srv, err := newServer(session, settings, s.Host, s.Port, ui.ModelOptions{
		ConfirmReset: confirmReset,
		KeysConfig:   settings.Keys,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting tally SSH server", "address", srv.Addr())
	fmt.Printf("SSH server listening on %s\n", srv.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printUnloadNotice(cli.Container.CloseSession())
	return nil
}

// applySettings fills flags left at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	host, port := serverAddress(settings)
	if s.Host == config.DefaultSSHHost {
		if _, hasEnv := os.LookupEnv("TALLY_SSH_HOST"); !hasEnv {
			s.Host = host
		}
	}
	if s.Port == config.DefaultSSHPort {
		if _, hasEnv := os.LookupEnv("TALLY_SSH_PORT"); !hasEnv {
			s.Port = port
		}
	}
	if s.AutoSave && settings.AutoSave != nil && !*settings.AutoSave {
		if _, hasEnv := os.LookupEnv("TALLY_AUTO_SAVE"); !hasEnv {
			s.AutoSave = false
		}
	}
	if s.SaveInterval == config.DefaultSaveIntervalMinutes && settings.SaveIntervalMinutes != nil {
		if _, hasEnv := os.LookupEnv("TALLY_SAVE_INTERVAL"); !hasEnv {
			s.SaveInterval = *settings.SaveIntervalMinutes
		}
	}
}

// serverAddress returns the SSH address from settings.json or the defaults
func serverAddress(settings *config.Settings) (string, int) {
	host := config.DefaultSSHHost
	port := config.DefaultSSHPort
	if settings.SSHHost != "" {
		host = settings.SSHHost
	}
	if settings.SSHPort != nil {
		port = *settings.SSHPort
	}
	return host, port
}

func newServer(session *services.SessionContext, settings *config.Settings, host string, port int, modelOpts ui.ModelOptions) (*server.Server, error) {
	authorizedKeys := settings.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = config.GetAuthorizedKeysPath()
	}

	srv, err := server.NewServer(session, server.Options{
		AuthorizedKeysPath: authorizedKeys,
		Host:               host,
		HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
		Model:              modelOpts,
		Port:               port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return srv, nil
}
