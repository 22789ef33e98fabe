package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/renato0307/tally/internal/ports"
)

// Fake is a Clock that only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance, in deadline
// order (ties in registration order), and may register new callbacks.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*fakeTimer
}

// Verify interface compliance at compile time
var _ ports.Clock = (*Fake)(nil)

type fakeTimer struct {
	at    time.Time
	clock *Fake
	fn    func()
	seq   int
}

// NewFake creates a fake clock set to start
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fake) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{at: c.now.Add(d), clock: c, fn: f, seq: c.seq}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes due
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks waiting to fire
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Fake) popDueLocked(target time.Time) *fakeTimer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at.Equal(c.pending[j].at) {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].at.Before(c.pending[j].at)
	})
	first := c.pending[0]
	if first.at.After(target) {
		return nil
	}
	c.pending = c.pending[1:]
	return first
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}
