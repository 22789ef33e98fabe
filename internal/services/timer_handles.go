package services

import (
	"time"

	"github.com/renato0307/tally/internal/ports"
)

// timerHandle is one periodic activity (tick or auto-save). A stopped handle
// never fires again, even if its pending callback is already waiting on the
// service lock.
type timerHandle struct {
	stopped bool
	timer   ports.Timer
}

// cancel stops the handle. Must hold s.mu.
func (h *timerHandle) cancel() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	if h.timer != nil {
		h.timer.Stop()
	}
}

// everyLocked schedules fn every d until the returned handle is cancelled.
// The next occurrence is armed before fn runs so a slow fn does not drift the
// schedule. fn runs without s.mu held. Must hold s.mu.
func (s *TimerService) everyLocked(d time.Duration, fn func(*timerHandle)) *timerHandle {
	h := &timerHandle{}
	var fire func()
	fire = func() {
		s.mu.Lock()
		if h.stopped {
			s.mu.Unlock()
			return
		}
		h.timer = s.clock.AfterFunc(d, fire)
		s.mu.Unlock()

		fn(h)
	}
	h.timer = s.clock.AfterFunc(d, fire)
	return h
}

// armTickLocked replaces the tick handle. Must hold s.mu.
func (s *TimerService) armTickLocked() {
	s.tick.cancel()
	s.tick = s.everyLocked(TickInterval, s.onTick)
}

// armAutoSaveLocked replaces the auto-save handle using the interval the
// session captured when it started. Must hold s.mu.
func (s *TimerService) armAutoSaveLocked() {
	s.autoSave.cancel()
	s.autoSave = nil
	if s.session.AutoSaveEvery <= 0 {
		return
	}
	s.autoSave = s.everyLocked(s.session.AutoSaveEvery, s.onAutoSave)
}

// disarmLocked cancels both handles. Must hold s.mu.
func (s *TimerService) disarmLocked() {
	s.tick.cancel()
	s.tick = nil
	s.autoSave.cancel()
	s.autoSave = nil
}
