package services

import (
	"log/slog"
	"time"

	"github.com/renato0307/tally/internal/adapters/clock"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// Timer defaults
const (
	DefaultSaveInterval = 30 * time.Minute
	DefaultSaveTimeout  = 10 * time.Second
	TickInterval        = time.Second
)

// TimerOptions configures a TimerService
type TimerOptions struct {
	AutoSave     bool                       // Periodic checkpoints while running
	Clock        ports.Clock                // Defaults to the wall clock
	Logger       *slog.Logger               // Receives swallowed save failures; defaults to logging.Logger
	OnError      func(error)                // Called when an interactive save fails
	OnSave       func(domain.TimeLogRecord) // Called after every successful save
	SaveInterval time.Duration              // Auto-save period, captured when a session starts
	SaveTimeout  time.Duration              // Deadline for saves that have no caller context
}

// DefaultTimerOptions returns auto-save every 30 minutes
func DefaultTimerOptions() TimerOptions {
	return TimerOptions{
		AutoSave:     true,
		SaveInterval: DefaultSaveInterval,
		SaveTimeout:  DefaultSaveTimeout,
	}
}

func (o TimerOptions) withDefaults() TimerOptions {
	if o.Clock == nil {
		o.Clock = clock.NewSystem()
	}
	if o.Logger == nil {
		o.Logger = logging.Logger
	}
	if o.AutoSave && o.SaveInterval <= 0 {
		o.SaveInterval = DefaultSaveInterval
	}
	if o.SaveTimeout <= 0 {
		o.SaveTimeout = DefaultSaveTimeout
	}
	return o
}

// autoSaveEvery is the interval a new session captures, 0 when disabled
func (o TimerOptions) autoSaveEvery() time.Duration {
	if !o.AutoSave || o.SaveInterval <= 0 {
		return 0
	}
	return o.SaveInterval
}
