package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/theme"
	"github.com/renato0307/tally/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	AutoSave     bool   `help:"Save elapsed time periodically while running" default:"true" negatable:"" env:"TALLY_AUTO_SAVE"`
	ConfirmReset bool   `help:"Ask before discarding elapsed time" default:"true" negatable:""`
	Description  string `help:"Description for the task started with --task"`
	Dev          bool   `help:"Enable development mode (shows version info in the header)"`
	NoticeDelay  int    `help:"Seconds before acknowledgements auto-clear" default:"5"`
	SaveInterval int    `help:"Minutes between automatic saves" default:"30" env:"TALLY_SAVE_INTERVAL"`
	Serve        bool   `help:"Also accept SSH terminals attaching to this timer"`
	Task         string `help:"Start timing this task right away (e.g. 42 or #42)"`
}

// applySettings fills flags left at their defaults from settings.json
func (r *RunCmd) applySettings(settings *config.Settings) {
	if r.AutoSave && settings.AutoSave != nil && !*settings.AutoSave {
		if _, hasEnv := os.LookupEnv("TALLY_AUTO_SAVE"); !hasEnv {
			r.AutoSave = false
		}
	}
	if r.ConfirmReset && settings.ConfirmReset != nil && !*settings.ConfirmReset {
		r.ConfirmReset = false
	}
	if r.SaveInterval == config.DefaultSaveIntervalMinutes && settings.SaveIntervalMinutes != nil {
		if _, hasEnv := os.LookupEnv("TALLY_SAVE_INTERVAL"); !hasEnv {
			r.SaveInterval = *settings.SaveIntervalMinutes
		}
	}
}

func (r *RunCmd) timerOptions() services.TimerOptions {
	opts := services.DefaultTimerOptions()
	opts.AutoSave = r.AutoSave
	opts.SaveInterval = time.Duration(r.SaveInterval) * time.Minute
	return opts
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.loadedSettings()
	r.applySettings(settings)

	if r.SaveInterval < 1 {
		return fmt.Errorf("save interval must be at least 1 minute, got %d", r.SaveInterval)
	}

	var taskID domain.TaskID
	if r.Task != "" {
		id, err := domain.ParseTaskID(r.Task)
		if err != nil {
			return err
		}
		taskID = id
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	session, err := cli.Container.OpenSession(r.timerOptions())
	if err != nil {
		return err
	}

	if !taskID.IsZero() {
		if err := session.Start(taskID, r.Description); err != nil {
			return fmt.Errorf("failed to start task: %w", err)
		}
	}

	modelOpts := ui.ModelOptions{
		ConfirmReset: r.ConfirmReset,
		DevMode:      r.Dev,
		KeysConfig:   settings.Keys,
		NoticeDelay:  time.Duration(r.NoticeDelay) * time.Second,
	}

	logging.Logger.Info("Starting tally TUI", "task_id", taskID, "serve", r.Serve)

	model := ui.NewModel(session, modelOpts)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen())

	if r.Serve {
		err = r.runWithServer(program, session, settings, modelOpts)
	} else {
		_, err = program.Run()
	}
	if err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	notice := cli.Container.CloseSession()
	printUnloadNotice(notice)

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// runWithServer runs the local TUI and the SSH server until the TUI exits
// or a signal arrives
func (r *RunCmd) runWithServer(program *tea.Program, session *services.SessionContext, settings *config.Settings, modelOpts ui.ModelOptions) error {
	host, port := serverAddress(settings)
	srv, err := newServer(session, settings, host, port, modelOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})

	fmt.Fprintf(os.Stderr, "SSH server listening on %s\n", srv.Addr())
	return g.Wait()
}

func printUnloadNotice(notice services.UnloadNotice) {
	if !notice.UnsavedTime {
		return
	}

	snap := notice.Snapshot
	if notice.SaveAttempted {
		fmt.Println(theme.WarningStyle.Render(fmt.Sprintf(
			"Saving %s on task #%s before exit. This save is best-effort; check `tally logs list`.",
			snap.FormattedTime, snap.TaskID)))
		return
	}
	fmt.Println(theme.WarningStyle.Render(fmt.Sprintf(
		"Discarded %s of paused time on task #%s.",
		snap.FormattedTime, snap.TaskID)))
}
