package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"negative clamps", -5, "00:00:00"},
		{"seconds only", 59, "00:00:59"},
		{"one of each", 3661, "01:01:01"},
		{"just under a day", 86399, "23:59:59"},
		{"past 99 hours", 100 * 3600, "100:00:00"},
		{"way past", 1234*3600 + 5*60 + 6, "1234:05:06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.seconds))
		})
	}
}

func TestHoursFromSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected float64
	}{
		{"zero", 0, 0},
		{"negative", -10, 0},
		{"hour and a half", 5400, 1.50},
		{"one hour", 3600, 1.00},
		{"ninety seconds rounds half up", 90, 0.03},
		{"fifteen seconds rounds to zero", 15, 0},
		{"one minute", 60, 0.02},
		{"eighteen seconds", 18, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HoursFromSeconds(tt.seconds))
		})
	}
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("7")
	require.NoError(t, err)
	assert.Equal(t, TaskID(7), id)

	id, err = ParseTaskID(" #42 ")
	require.NoError(t, err)
	assert.Equal(t, TaskID(42), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := ParseTaskID(bad)
		assert.True(t, errors.Is(err, ErrInvalidTask), "input %q", bad)
	}
}

func TestSession_StateFollowsFields(t *testing.T) {
	assert.Equal(t, StateIdle, Session{}.State())
	assert.Equal(t, StatePaused, Session{TaskID: 3}.State())
	assert.Equal(t, StateRunning, Session{TaskID: 3, Running: true, StartAnchor: time.Now()}.State())
}

func TestSession_TotalAddsRunningInterval(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := Session{TaskID: 1, Running: true, StartAnchor: anchor, Elapsed: 30 * time.Second}

	assert.Equal(t, 40*time.Second, s.Total(anchor.Add(10*time.Second)))

	s.Running = false
	s.StartAnchor = time.Time{}
	assert.Equal(t, 30*time.Second, s.Total(anchor.Add(time.Hour)), "paused sessions do not accrue")
}

func TestSession_SnapshotAnchorMatchesRunning(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	running := Session{TaskID: 1, Running: true, StartAnchor: now.Add(-3661 * time.Second)}.Snapshot(now)
	require.NotNil(t, running.StartAnchor)
	assert.True(t, running.IsRunning())
	assert.Equal(t, "01:01:01", running.FormattedTime)
	assert.Equal(t, int64(0), running.ElapsedSeconds)
	assert.Equal(t, int64(3661), running.TotalSeconds)
	assert.True(t, running.HasUnsavedTime())

	paused := Session{TaskID: 1, Elapsed: 5400 * time.Second}.Snapshot(now)
	assert.Nil(t, paused.StartAnchor)
	assert.Equal(t, 1.5, paused.TimeInHours)
	assert.Equal(t, SymbolPaused, paused.Symbol())

	idle := Session{}.Snapshot(now)
	assert.Nil(t, idle.StartAnchor)
	assert.False(t, idle.HasUnsavedTime())
	assert.Equal(t, SymbolIdle, idle.Symbol())
}

func TestNewTimeLogRecord(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	rec := NewTimeLogRecord(7, 5400, "review", SourceManual, at)

	assert.Equal(t, TaskID(7), rec.TaskID)
	assert.Equal(t, 1.5, rec.Hours)
	assert.Equal(t, int64(5400), rec.Seconds)
	assert.Equal(t, "2026-03-01", rec.Date)
	assert.Equal(t, SourceManual, rec.Source)
	assert.NotEmpty(t, rec.ID)

	other := NewTimeLogRecord(7, 5400, "review", SourceManual, at)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestEvent_Acknowledgement(t *testing.T) {
	rec := NewTimeLogRecord(7, 5400, "", SourceManual, time.Now())
	assert.Equal(t, "Saved 1.50h on task #7", Event{Type: EventSaved, Record: &rec}.Acknowledgement())
	assert.Equal(t, "Timer started for task #7", Event{Type: EventStarted, Snapshot: Snapshot{TaskID: 7}}.Acknowledgement())
	assert.Equal(t, "Save failed: boom", Event{Type: EventSaveFailed, Err: errors.New("boom")}.Acknowledgement())
	assert.Empty(t, Event{Type: EventTick}.Acknowledgement())
}
