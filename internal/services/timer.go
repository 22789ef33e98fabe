package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/ports"
)

// TimerService is the work-session engine. It owns the single live session,
// runs the tick and auto-save loops, and hands completed time to the gateway.
//
// All session mutations and snapshot reads happen under mu, so a tick never
// observes a checkpoint halfway through. Gateway calls run outside mu but
// under saveMu, so saves never overlap.
type TimerService struct {
	mu       sync.Mutex
	saveMu   sync.Mutex
	autoSave *timerHandle
	clock    ports.Clock
	closed   bool
	epoch    uint64 // bumped whenever the bound session is discarded
	flushes  sync.WaitGroup
	gateway  ports.TimeLogWriter
	logger   *slog.Logger
	opts     TimerOptions
	session  domain.Session
	sink     func(domain.Event)
	tick     *timerHandle
}

// UnloadNotice tells the host whether time was left unsaved at teardown.
// The save attempted by Unload is best effort: it may or may not land.
type UnloadNotice struct {
	SaveAttempted bool
	Snapshot      domain.Snapshot
	UnsavedTime   bool
}

// NewTimerService creates an idle TimerService. Start from
// DefaultTimerOptions: a zero TimerOptions leaves auto-save off.
func NewTimerService(gateway ports.TimeLogWriter, opts TimerOptions) *TimerService {
	opts = opts.withDefaults()
	return &TimerService{
		clock:   opts.Clock,
		gateway: gateway,
		logger:  opts.Logger,
		opts:    opts,
	}
}

// SetEventSink registers the single event consumer. The sink is called with
// the service lock held: it must not block and must not call back into the
// service.
func (s *TimerService) SetEventSink(sink func(domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Reconfigure changes auto-save settings for sessions started from now on.
// A live session keeps the interval it captured when it started.
func (s *TimerService) Reconfigure(autoSave bool, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.AutoSave = autoSave
	s.opts.SaveInterval = interval
	s.logger.Debug("Timer reconfigured", "auto_save", autoSave, "save_interval", interval)
}

// Snapshot returns the current session with derived values computed now
func (s *TimerService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Snapshot(s.clock.Now())
}

// Start binds taskID and starts the clock.
// Starting the bound task while paused resumes it; starting another task while
// one is bound is refused with ErrTaskConflict (use SwitchTask).
func (s *TimerService) Start(taskID domain.TaskID, description string) error {
	if taskID <= 0 {
		return fmt.Errorf("cannot start timer: %w: %d", domain.ErrInvalidTask, taskID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}

	switch {
	case s.session.TaskID.IsZero():
	case s.session.TaskID != taskID:
		s.logger.Warn("Refusing to start timer while another task is bound",
			"bound_task", s.session.TaskID,
			"requested_task", taskID)
		return fmt.Errorf("cannot start task #%s: %w (task #%s)", taskID, domain.ErrTaskConflict, s.session.TaskID)
	case s.session.Running:
		return fmt.Errorf("cannot start task #%s: %w", taskID, domain.ErrAlreadyRunning)
	default:
		if description != "" {
			s.session.Description = description
		}
		s.resumeLocked()
		return nil
	}

	now := s.clock.Now()
	s.session = domain.Session{
		AutoSaveEvery: s.opts.autoSaveEvery(),
		Description:   description,
		Elapsed:       s.session.Elapsed,
		Running:       true,
		StartAnchor:   now,
		TaskID:        taskID,
	}
	s.armTickLocked()
	s.armAutoSaveLocked()

	s.logger.Info("Timer started",
		"task_id", taskID,
		"auto_save_every", s.session.AutoSaveEvery)
	s.emitLocked(domain.Event{Type: domain.EventStarted, Snapshot: s.session.Snapshot(now)})
	return nil
}

// Pause stops the clock and folds the running interval into elapsed time
func (s *TimerService) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}
	if !s.session.Running {
		return fmt.Errorf("cannot pause: %w", domain.ErrNotRunning)
	}

	s.pauseLocked()
	return nil
}

// TogglePause pauses a running session and resumes a paused one in a single
// step, so concurrent terminals toggling never see a stale state
func (s *TimerService) TogglePause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}
	if s.session.TaskID.IsZero() {
		return fmt.Errorf("cannot toggle: %w", domain.ErrNoActiveSession)
	}

	if s.session.Running {
		s.pauseLocked()
	} else {
		s.resumeLocked()
	}
	return nil
}

func (s *TimerService) pauseLocked() {
	s.disarmLocked()
	now := s.clock.Now()
	s.session.Elapsed = s.session.Total(now)
	s.session.StartAnchor = time.Time{}
	s.session.Running = false

	s.logger.Info("Timer paused", "task_id", s.session.TaskID, "elapsed", s.session.Elapsed)
	s.emitLocked(domain.Event{Type: domain.EventPaused, Snapshot: s.session.Snapshot(now)})
}

// Resume restarts the clock of a paused session
func (s *TimerService) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}
	if s.session.TaskID.IsZero() {
		return fmt.Errorf("cannot resume: %w", domain.ErrNoActiveSession)
	}
	if s.session.Running {
		return fmt.Errorf("cannot resume: %w", domain.ErrNotPaused)
	}

	s.resumeLocked()
	return nil
}

func (s *TimerService) resumeLocked() {
	now := s.clock.Now()
	s.session.StartAnchor = now
	s.session.Running = true
	s.armTickLocked()
	s.armAutoSaveLocked()

	s.logger.Info("Timer resumed", "task_id", s.session.TaskID)
	s.emitLocked(domain.Event{Type: domain.EventResumed, Snapshot: s.session.Snapshot(now)})
}

// SaveCurrentSession persists the accrued time as a time log.
// With resetAfterSave the session returns to idle; otherwise it is a
// checkpoint: the task stays bound, the saved time is deducted and a running
// clock keeps going from zero. On failure nothing changes, OnError is called
// and the error is returned for the caller to decide on a retry.
func (s *TimerService) SaveCurrentSession(ctx context.Context, resetAfterSave bool) error {
	if s.isClosed() {
		return domain.ErrClosed
	}

	source := domain.SourceCheckpoint
	if resetAfterSave {
		source = domain.SourceManual
	}
	if _, err := s.save(ctx, resetAfterSave, source); err != nil {
		if isPersistenceError(err) {
			s.reportError(err)
		}
		return err
	}
	return nil
}

// StopAndSave persists the accrued time and returns to idle
func (s *TimerService) StopAndSave(ctx context.Context) error {
	return s.SaveCurrentSession(ctx, true)
}

// Reset discards all accrued and running time without saving and returns to
// idle. Resetting an idle timer does nothing. Callers confirm with the user.
func (s *TimerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.TaskID.IsZero() && s.session.Elapsed == 0 && s.tick == nil && s.autoSave == nil {
		return
	}

	discarded := s.session.Total(s.clock.Now())
	taskID := s.session.TaskID
	s.clearLocked()

	s.logger.Info("Timer reset", "task_id", taskID, "discarded", discarded)
	s.emitLocked(domain.Event{Type: domain.EventReset, Snapshot: s.session.Snapshot(s.clock.Now())})
}

// UpdateDescription replaces the note attached to the next saved time log
func (s *TimerService) UpdateDescription(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}
	if s.session.TaskID.IsZero() {
		return fmt.Errorf("cannot update description: %w", domain.ErrNoActiveSession)
	}

	s.session.Description = text
	s.emitLocked(domain.Event{Type: domain.EventDescription, Snapshot: s.session.Snapshot(s.clock.Now())})
	return nil
}

// SwitchTask hands the timer over to taskID.
//
// When saveCurrentFirst is set and the current session has accrued time, it is
// checkpointed first. A failure of that checkpoint is logged and reported to
// subscribers, never returned: a transient gateway error must not block the
// switch. The timer then resets and starts on the new task; subscribers
// observe the idle state in between.
func (s *TimerService) SwitchTask(ctx context.Context, taskID domain.TaskID, description string, saveCurrentFirst bool) error {
	if taskID <= 0 {
		return fmt.Errorf("cannot switch task: %w: %d", domain.ErrInvalidTask, taskID)
	}
	if s.isClosed() {
		return domain.ErrClosed
	}

	if saveCurrentFirst {
		if current := s.Snapshot(); current.HasUnsavedTime() {
			if _, err := s.save(ctx, false, domain.SourceSwitch); err != nil {
				s.logger.Warn("Checkpoint before task switch failed, switching anyway",
					"from_task", current.TaskID,
					"to_task", taskID,
					"unsaved_seconds", current.TotalSeconds,
					"error", err)
			}
		}
	}

	s.Reset()
	return s.Start(taskID, description)
}

// Unload tears the timer down at application shutdown. Both loops are cancelled
// unconditionally. If a running session has accrued time, one checkpoint save
// is fired in the background and never awaited; its outcome is only logged.
// The notice tells the host whether to warn about unsaved time.
func (s *TimerService) Unload() UnloadNotice {
	s.mu.Lock()
	s.disarmLocked()
	alreadyClosed := s.closed
	s.closed = true
	snap := s.session.Snapshot(s.clock.Now())
	notice := UnloadNotice{
		SaveAttempted: !alreadyClosed && snap.IsRunning() && snap.TotalSeconds > 0,
		Snapshot:      snap,
		UnsavedTime:   snap.HasUnsavedTime(),
	}
	if !alreadyClosed {
		s.emitLocked(domain.Event{Type: domain.EventUnloaded, Snapshot: snap})
	}
	s.mu.Unlock()

	if notice.SaveAttempted {
		s.flushes.Add(1)
		go s.flushOnUnload()
	}

	s.logger.Info("Timer unloaded",
		"task_id", snap.TaskID,
		"unsaved_seconds", snap.TotalSeconds,
		"save_attempted", notice.SaveAttempted)
	return notice
}

// Drain waits for background unload saves until ctx is done. It reports
// whether they finished. Hosts may call it right before exiting; nothing
// relies on it.
func (s *TimerService) Drain(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		s.flushes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *TimerService) flushOnUnload() {
	defer s.flushes.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.SaveTimeout)
	defer cancel()

	if _, err := s.save(ctx, false, domain.SourceUnload); err != nil {
		s.logger.Warn("Best-effort save on unload failed", "error", err)
	}
}

// save persists the time accrued up to now. The record is cut under mu, the
// gateway is called without it, and the outcome is applied only if the
// session was not discarded in the meantime.
func (s *TimerService) save(ctx context.Context, resetAfterSave bool, source domain.SaveSource) (domain.TimeLogRecord, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.session.TaskID.IsZero() {
		s.mu.Unlock()
		return domain.TimeLogRecord{}, fmt.Errorf("cannot save: %w", domain.ErrNoActiveSession)
	}
	cut := s.clock.Now()
	seconds := domain.WholeSeconds(s.session.Total(cut))
	if seconds == 0 {
		s.mu.Unlock()
		return domain.TimeLogRecord{}, fmt.Errorf("cannot save: %w", domain.ErrNothingToSave)
	}
	description := s.session.Description
	if source == domain.SourceAuto && description == "" {
		description = domain.AutoSaveDescription
	}
	record := domain.NewTimeLogRecord(s.session.TaskID, seconds, description, source, cut)
	epoch := s.epoch
	s.mu.Unlock()

	s.logger.Debug("Saving time log",
		"id", record.ID,
		"task_id", record.TaskID,
		"seconds", record.Seconds,
		"source", record.Source)

	if err := s.gateway.CreateTimeLog(ctx, record); err != nil {
		s.logger.Error("Failed to save time log",
			"task_id", record.TaskID,
			"seconds", record.Seconds,
			"source", record.Source,
			"error", err)

		s.mu.Lock()
		s.emitLocked(domain.Event{Type: domain.EventSaveFailed, Err: err, Record: &record, Snapshot: s.session.Snapshot(s.clock.Now())})
		s.mu.Unlock()
		return record, &persistenceError{err: err}
	}

	s.mu.Lock()
	switch {
	case s.epoch != epoch:
		s.logger.Info("Session changed while saving, keeping new state", "id", record.ID)
	case resetAfterSave:
		s.clearLocked()
	default:
		s.deductLocked(seconds)
	}
	s.emitLocked(domain.Event{Type: domain.EventSaved, Record: &record, Snapshot: s.session.Snapshot(s.clock.Now())})
	s.mu.Unlock()

	s.logger.Info("Time log saved",
		"id", record.ID,
		"task_id", record.TaskID,
		"hours", record.Hours,
		"source", record.Source)

	if s.opts.OnSave != nil {
		s.opts.OnSave(record)
	}
	return record, nil
}

// deductLocked removes saved seconds from the session. Time that accrued while
// the gateway call was in flight stays on the session. Must hold s.mu.
func (s *TimerService) deductLocked(seconds int64) {
	now := s.clock.Now()
	remaining := s.session.Total(now) - time.Duration(seconds)*time.Second
	if remaining < 0 {
		remaining = 0
	}
	s.session.Elapsed = remaining
	if s.session.Running {
		s.session.StartAnchor = now
	}
}

// clearLocked returns to idle. Must hold s.mu.
func (s *TimerService) clearLocked() {
	s.disarmLocked()
	s.session = domain.Session{}
	s.epoch++
}

func (s *TimerService) onTick(h *timerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.stopped || h != s.tick {
		return
	}
	s.emitLocked(domain.Event{Type: domain.EventTick, Snapshot: s.session.Snapshot(s.clock.Now())})
}

func (s *TimerService) onAutoSave(h *timerHandle) {
	s.mu.Lock()
	if h.stopped || h != s.autoSave || !s.session.Running {
		s.mu.Unlock()
		return
	}
	snap := s.session.Snapshot(s.clock.Now())
	s.mu.Unlock()

	if !snap.HasUnsavedTime() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.SaveTimeout)
	defer cancel()

	if _, err := s.save(ctx, false, domain.SourceAuto); err != nil {
		s.logger.Warn("Auto-save failed, timer keeps running", "task_id", snap.TaskID, "error", err)
	}
}

func (s *TimerService) emitLocked(event domain.Event) {
	if s.sink != nil {
		s.sink(event)
	}
}

func (s *TimerService) reportError(err error) {
	if s.opts.OnError != nil {
		s.opts.OnError(err)
	}
}

func (s *TimerService) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// persistenceError marks gateway failures apart from precondition errors
type persistenceError struct {
	err error
}

func (e *persistenceError) Error() string { return "failed to save time log: " + e.err.Error() }

func (e *persistenceError) Unwrap() error { return e.err }

func isPersistenceError(err error) bool {
	var perr *persistenceError
	return errors.As(err, &perr)
}
