// Package clock provides the wall clock used by the timer and a manually
// advanced fake for tests.
package clock

import (
	"time"

	"github.com/renato0307/tally/internal/ports"
)

// System is the Clock backed by the standard time package
type System struct{}

// Verify interface compliance at compile time
var _ ports.Clock = System{}

// NewSystem creates a wall clock
func NewSystem() System {
	return System{}
}

func (System) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}

func (System) Now() time.Time {
	return time.Now()
}
