package services

import (
	"context"
	"sync"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
)

// SessionContext shares one TimerService with every consumer of the
// application: the local TUI and any number of SSH-attached terminals.
// It is created once at startup and closed once at shutdown.
type SessionContext struct {
	mu          sync.Mutex
	closed      bool
	done        chan struct{}
	nextID      int
	subscribers map[int]chan domain.Event
	timer       *TimerService
}

// NewSessionContext takes ownership of timer and starts fanning its events out
func NewSessionContext(timer *TimerService) *SessionContext {
	sc := &SessionContext{
		done:        make(chan struct{}),
		subscribers: make(map[int]chan domain.Event),
		timer:       timer,
	}
	timer.SetEventSink(sc.broadcast)
	return sc
}

// Subscribe registers a new observer channel. The returned function
// unsubscribes and closes the channel. A subscriber that falls behind loses
// its oldest pending event, never the latest one.
func (sc *SessionContext) Subscribe(buffer int) (<-chan domain.Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.Event, buffer)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.closed {
		close(ch)
		return ch, func() {}
	}

	id := sc.nextID
	sc.nextID++
	sc.subscribers[id] = ch
	logging.Logger.Debug("Timer subscriber added", "subscriber", id, "subscribers", len(sc.subscribers))

	var once sync.Once
	return ch, func() {
		once.Do(func() { sc.unsubscribe(id) })
	}
}

func (sc *SessionContext) unsubscribe(id int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	ch, ok := sc.subscribers[id]
	if !ok {
		return
	}
	delete(sc.subscribers, id)
	close(ch)
	logging.Logger.Debug("Timer subscriber removed", "subscriber", id, "subscribers", len(sc.subscribers))
}

// Subscribers returns the number of attached observers
func (sc *SessionContext) Subscribers() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.subscribers)
}

// broadcast runs under the timer lock and must never block
func (sc *SessionContext) broadcast(event domain.Event) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for _, ch := range sc.subscribers {
		select {
		case ch <- event:
			continue
		default:
		}
		// Full: drop the oldest so the latest state always lands
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

// Done is closed when the context shuts down
func (sc *SessionContext) Done() <-chan struct{} {
	return sc.done
}

// Snapshot returns the current timer state
func (sc *SessionContext) Snapshot() domain.Snapshot {
	return sc.timer.Snapshot()
}

// Start binds a task and starts the clock
func (sc *SessionContext) Start(taskID domain.TaskID, description string) error {
	return sc.timer.Start(taskID, description)
}

// Pause stops the clock
func (sc *SessionContext) Pause() error {
	return sc.timer.Pause()
}

// Resume restarts a paused clock
func (sc *SessionContext) Resume() error {
	return sc.timer.Resume()
}

// TogglePause pauses a running timer and resumes a paused one
func (sc *SessionContext) TogglePause() error {
	return sc.timer.TogglePause()
}

// SaveCurrentSession persists accrued time, optionally returning to idle
func (sc *SessionContext) SaveCurrentSession(ctx context.Context, resetAfterSave bool) error {
	return sc.timer.SaveCurrentSession(ctx, resetAfterSave)
}

// StopAndSave persists accrued time and returns to idle
func (sc *SessionContext) StopAndSave(ctx context.Context) error {
	return sc.timer.StopAndSave(ctx)
}

// ResetTimer discards accrued time without saving
func (sc *SessionContext) ResetTimer() {
	sc.timer.Reset()
}

// UpdateDescription replaces the note for the next saved time log
func (sc *SessionContext) UpdateDescription(text string) error {
	return sc.timer.UpdateDescription(text)
}

// SwitchTask hands the timer over to another task
func (sc *SessionContext) SwitchTask(ctx context.Context, taskID domain.TaskID, description string, saveCurrentFirst bool) error {
	return sc.timer.SwitchTask(ctx, taskID, description, saveCurrentFirst)
}

// Close unloads the timer and releases every subscriber. Only the first call
// does anything; later calls return the current state with no save attempt.
func (sc *SessionContext) Close() UnloadNotice {
	notice := sc.timer.Unload()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.closed {
		return notice
	}
	sc.closed = true
	for id, ch := range sc.subscribers {
		delete(sc.subscribers, id)
		close(ch)
	}
	close(sc.done)

	logging.Logger.Info("Session context closed",
		"unsaved_time", notice.UnsavedTime,
		"save_attempted", notice.SaveAttempted)
	return notice
}

// Drain gives background unload saves until ctx is done to finish
func (sc *SessionContext) Drain(ctx context.Context) bool {
	return sc.timer.Drain(ctx)
}
