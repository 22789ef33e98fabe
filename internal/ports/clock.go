package ports

import "time"

// Timer is a pending one-shot callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was stopped.
	Stop() bool
}

// Clock provides wall time and one-shot callbacks.
// Periodic activities are built by re-arming AfterFunc from the callback.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}
