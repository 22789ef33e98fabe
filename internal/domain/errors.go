package domain

import "errors"

// Precondition errors. Commands returning one of these leave the session untouched.
var (
	ErrAlreadyRunning  = errors.New("timer already running")
	ErrClosed          = errors.New("timer closed")
	ErrInvalidTask     = errors.New("invalid task id")
	ErrNoActiveSession = errors.New("no active session")
	ErrNotPaused       = errors.New("timer is not paused")
	ErrNotRunning      = errors.New("timer is not running")
	ErrNothingToSave   = errors.New("no elapsed time to save")
	ErrTaskConflict    = errors.New("another task is already bound")
)

var (
	ErrInstanceLocked   = errors.New("another tally instance owns this home directory")
	ErrTimeLogNotFound  = errors.New("time log not found")
	ErrTimeLogDuplicate = errors.New("time log already recorded")
)
