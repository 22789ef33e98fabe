package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	adapterlock "github.com/renato0307/tally/internal/adapters/lock"
	adapterstorage "github.com/renato0307/tally/internal/adapters/storage"
	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
	"github.com/renato0307/tally/internal/services"
)

// drainTimeout bounds how long shutdown waits for the unload save
const drainTimeout = 3 * time.Second

// Container holds all dependencies for the application
type Container struct {
	// Services
	TimeLogService *services.TimeLogService

	// Set by OpenSession; nil for commands that only read logs
	Session *services.SessionContext

	// Internal - for cleanup only
	lock         ports.InstanceLock
	lockPath     string
	repo         ports.TimeLogRepository
	sessionState *services.UnloadNotice
}

// NewContainer creates a new Container backed by the database at dbPath
func NewContainer(dbPath string) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		TimeLogService: services.NewTimeLogService(repo),
		lockPath:       config.GetLockPath(),
		repo:           repo,
	}, nil
}

// TimerOptionsFromSettings builds engine options from settings.json values
func TimerOptionsFromSettings(settings *config.Settings) services.TimerOptions {
	opts := services.DefaultTimerOptions()
	if settings == nil {
		return opts
	}
	if settings.AutoSave != nil {
		opts.AutoSave = *settings.AutoSave
	}
	if settings.SaveIntervalMinutes != nil {
		opts.SaveInterval = time.Duration(*settings.SaveIntervalMinutes) * time.Minute
	}
	return opts
}

// OpenSession takes the instance lock and creates the one timer this process
// owns. A second process on the same home fails with domain.ErrInstanceLocked.
func (c *Container) OpenSession(opts services.TimerOptions) (*services.SessionContext, error) {
	if c.Session != nil {
		return c.Session, nil
	}

	lock, err := adapterlock.Acquire(c.lockPath)
	if err != nil {
		return nil, fmt.Errorf("another tally instance owns the timer: %w", err)
	}
	c.lock = lock

	timer := services.NewTimerService(c.repo, opts)
	c.Session = services.NewSessionContext(timer)

	logging.Logger.Info("Timer session opened",
		"auto_save", opts.AutoSave,
		"save_interval", opts.SaveInterval.String())
	return c.Session, nil
}

// CloseSession unloads the timer and waits briefly for the unload save.
// It is safe to call more than once; only the first call unloads.
func (c *Container) CloseSession() services.UnloadNotice {
	if c.sessionState != nil {
		return *c.sessionState
	}
	if c.Session == nil {
		return services.UnloadNotice{}
	}

	notice := c.Session.Close()
	c.sessionState = &notice

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if !c.Session.Drain(ctx) {
		logging.Logger.Warn("Unload save still running at exit", "task_id", notice.Snapshot.TaskID)
	}
	return notice
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.CloseSession()

	var errs []error
	if c.repo != nil {
		if err := c.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		c.repo = nil
	}
	if c.lock != nil {
		if err := c.lock.Release(); err != nil {
			errs = append(errs, fmt.Errorf("failed to release lock: %w", err))
		}
		c.lock = nil
	}
	return errors.Join(errs...)
}
