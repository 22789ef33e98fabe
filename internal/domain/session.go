package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SessionState represents the state of the work-session timer
type SessionState string

const (
	StateIdle    SessionState = "idle"
	StatePaused  SessionState = "paused"
	StateRunning SessionState = "running"
)

// Status symbols (Unicode)
const (
	SymbolIdle    = "○" // Gray - no task bound
	SymbolPaused  = "◐" // Yellow - paused
	SymbolRunning = "●" // Green - clock advancing
)

// TaskID identifies the task a session's time is attributed to.
// The zero value means no task is bound.
type TaskID int64

// IsZero reports whether no task is bound
func (id TaskID) IsZero() bool { return id == 0 }

func (id TaskID) String() string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(int64(id), 10)
}

// ParseTaskID parses a user-supplied task id ("7" or "#7")
func ParseTaskID(s string) (TaskID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTask, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTask, n)
	}
	return TaskID(n), nil
}

// Session is the live binding between the timer and a single task.
// Elapsed holds the folded time and excludes the running interval,
// whose contribution is Now - StartAnchor.
type Session struct {
	AutoSaveEvery time.Duration
	Description   string
	Elapsed       time.Duration
	Running       bool
	StartAnchor   time.Time
	TaskID        TaskID
}

// State derives the state machine position from the session fields
func (s Session) State() SessionState {
	switch {
	case s.TaskID.IsZero():
		return StateIdle
	case s.Running:
		return StateRunning
	default:
		return StatePaused
	}
}

// Total returns folded time plus the running interval at now
func (s Session) Total(now time.Time) time.Duration {
	total := s.Elapsed
	if s.Running && !s.StartAnchor.IsZero() && now.After(s.StartAnchor) {
		total += now.Sub(s.StartAnchor)
	}
	return total
}

// Snapshot captures the session at instant now, with derived values
// computed on the spot.
func (s Session) Snapshot(now time.Time) Snapshot {
	total := WholeSeconds(s.Total(now))
	snap := Snapshot{
		At:             now,
		Description:    s.Description,
		ElapsedSeconds: WholeSeconds(s.Elapsed),
		FormattedTime:  FormatElapsed(total),
		State:          s.State(),
		TaskID:         s.TaskID,
		TimeInHours:    HoursFromSeconds(total),
		TotalSeconds:   total,
	}
	if s.Running {
		anchor := s.StartAnchor
		snap.StartAnchor = &anchor
	}
	return snap
}

// Snapshot is the read model published to timer consumers
type Snapshot struct {
	At             time.Time
	Description    string
	ElapsedSeconds int64
	FormattedTime  string
	StartAnchor    *time.Time
	State          SessionState
	TaskID         TaskID
	TimeInHours    float64
	TotalSeconds   int64
}

// IsRunning reports whether the clock is advancing
func (s Snapshot) IsRunning() bool { return s.State == StateRunning }

// HasUnsavedTime reports whether a bound session carries time that has not
// been persisted yet
func (s Snapshot) HasUnsavedTime() bool {
	return !s.TaskID.IsZero() && s.TotalSeconds > 0
}

// Symbol returns the status symbol for the snapshot state
func (s Snapshot) Symbol() string {
	switch s.State {
	case StateRunning:
		return SymbolRunning
	case StatePaused:
		return SymbolPaused
	default:
		return SymbolIdle
	}
}
