package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/adapters/clock"
	"github.com/renato0307/tally/internal/domain"
	portsmocks "github.com/renato0307/tally/internal/ports/mocks"
	"github.com/renato0307/tally/internal/services"
)

var testStart = time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

type modelFixture struct {
	clock   *clock.Fake
	gateway *portsmocks.MockTimeLogWriter
	model   *Model
	session *services.SessionContext
}

func newModelFixture(t *testing.T, opts ModelOptions) *modelFixture {
	t.Helper()
	clk := clock.NewFake(testStart)
	gateway := portsmocks.NewMockTimeLogWriter(t)
	timer := services.NewTimerService(gateway, services.TimerOptions{Clock: clk})
	session := services.NewSessionContext(timer)

	model := NewModel(session, opts)
	t.Cleanup(model.Close)

	return &modelFixture{
		clock:   clk,
		gateway: gateway,
		model:   model,
		session: session,
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func (f *modelFixture) press(s string) tea.Cmd {
	_, cmd := f.model.Update(keyPress(s))
	return cmd
}

// runCommand executes a command returned by Model.run and feeds its result back
func (f *modelFixture) runCommand(t *testing.T, cmd tea.Cmd) commandDoneMsg {
	t.Helper()
	require.NotNil(t, cmd)
	done, ok := cmd().(commandDoneMsg)
	require.True(t, ok, "expected a timer command")
	f.model.Update(done)
	return done
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_QuitWithoutUnsavedTime(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	assert.True(t, isQuit(f.press("q")))
}

func TestModel_QuitWarnsOnceWhenTimeIsUnsaved(t *testing.T) {
	tests := []struct {
		name        string
		pause       bool
		wantWarning string
	}{
		{name: "running", wantWarning: "will be saved on exit"},
		{name: "paused", pause: true, wantWarning: "will be lost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newModelFixture(t, ModelOptions{})
			require.NoError(t, f.session.Start(7, ""))
			f.clock.Advance(90 * time.Second)
			if tt.pause {
				require.NoError(t, f.session.Pause())
			}

			f.press("q")
			assert.True(t, f.model.quitPending)
			assert.Equal(t, noticeWarning, f.model.notifier.kind)
			assert.Contains(t, f.model.notifier.message, tt.wantWarning)
			assert.Contains(t, f.model.notifier.message, "00:01:30")

			assert.True(t, isQuit(f.press("q")))
		})
	}
}

func TestModel_OtherKeyCancelsPendingQuit(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(5 * time.Second)

	f.press("q")
	require.True(t, f.model.quitPending)

	f.press("?")
	assert.False(t, f.model.quitPending)
	assert.Equal(t, stateHelp, f.model.state)
}

func TestModel_RemoteQuitDetachesImmediately(t *testing.T) {
	f := newModelFixture(t, ModelOptions{Remote: true})
	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(5 * time.Second)

	assert.True(t, isQuit(f.press("q")))
	assert.Equal(t, domain.StateRunning, f.session.Snapshot().State, "detaching leaves the shared timer alone")
}

func TestModel_ForceQuit(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(5 * time.Second)

	assert.True(t, isQuit(f.press("ctrl+c")))
}

func TestModel_SpaceOpensTaskFormWhenIdle(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.press(" ")
	assert.Equal(t, stateSelectingTask, f.model.state)
	require.NotNil(t, f.model.dialog)

	f.press("esc")
	assert.Equal(t, stateTimer, f.model.state)
	assert.Nil(t, f.model.dialog)
	assert.Equal(t, domain.StateIdle, f.session.Snapshot().State)
}

func TestModel_SpaceTogglesPause(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	require.NoError(t, f.session.Start(7, ""))

	done := f.runCommand(t, f.press(" "))
	assert.NoError(t, done.err)
	assert.Equal(t, domain.StatePaused, f.session.Snapshot().State)

	done = f.runCommand(t, f.press(" "))
	assert.NoError(t, done.err)
	assert.Equal(t, domain.StateRunning, f.session.Snapshot().State)
}

func TestModel_Checkpoint(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.gateway.EXPECT().CreateTimeLog(mock.Anything, mock.MatchedBy(func(r domain.TimeLogRecord) bool {
		return r.TaskID == 7 && r.Seconds == 90 && r.Source == domain.SourceCheckpoint
	})).Return(nil).Once()

	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(90 * time.Second)

	done := f.runCommand(t, f.press("s"))
	assert.Equal(t, "checkpoint", done.action)
	assert.NoError(t, done.err)
	assert.Equal(t, domain.StateRunning, f.session.Snapshot().State)
}

func TestModel_CheckpointFailureShowsError(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.gateway.EXPECT().CreateTimeLog(mock.Anything, mock.Anything).Return(errors.New("gateway unavailable")).Once()

	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(90 * time.Second)

	done := f.runCommand(t, f.press("s"))
	require.Error(t, done.err)
	assert.Equal(t, noticeError, f.model.notifier.kind)
	assert.Contains(t, f.model.renderTimer(), "gateway unavailable")
}

func TestModel_StopAndSave(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.gateway.EXPECT().CreateTimeLog(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.session.Start(7, ""))
	f.clock.Advance(time.Minute)

	done := f.runCommand(t, f.press("x"))
	assert.NoError(t, done.err)
	assert.Equal(t, domain.StateIdle, f.session.Snapshot().State)
}

func TestModel_DescriptionRequiresSession(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.press("e")
	assert.Equal(t, stateTimer, f.model.state)
	assert.ErrorIs(t, f.model.notifier.err, domain.ErrNoActiveSession)

	require.NoError(t, f.session.Start(7, "draft"))
	f.press("e")
	assert.Equal(t, stateEditingDescription, f.model.state)
}

func TestModel_Reset(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{})
		require.NoError(t, f.session.Start(7, ""))
		f.clock.Advance(time.Minute)

		f.press("r")
		assert.Equal(t, domain.StateIdle, f.session.Snapshot().State)
	})

	t.Run("confirmation can be declined", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{ConfirmReset: true})
		require.NoError(t, f.session.Start(7, ""))
		f.clock.Advance(time.Minute)

		f.press("r")
		assert.Equal(t, stateConfirmingReset, f.model.state)

		f.press("esc")
		assert.Equal(t, stateTimer, f.model.state)
		assert.Equal(t, domain.StateRunning, f.session.Snapshot().State)
	})

	t.Run("nothing to confirm without elapsed time", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{ConfirmReset: true})
		require.NoError(t, f.session.Start(7, ""))

		f.press("r")
		assert.Equal(t, stateTimer, f.model.state)
		assert.Equal(t, domain.StateIdle, f.session.Snapshot().State)
	})
}

func TestModel_ApplyTaskForm(t *testing.T) {
	t.Run("starts when idle", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{})
		f.runCommand(t, f.model.applyTaskForm(TaskFormResult{TaskID: 4, Description: "review"}))

		snap := f.session.Snapshot()
		assert.Equal(t, domain.StateRunning, snap.State)
		assert.Equal(t, domain.TaskID(4), snap.TaskID)
		assert.Equal(t, "review", snap.Description)
	})

	t.Run("switches and saves first", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{})
		f.gateway.EXPECT().CreateTimeLog(mock.Anything, mock.MatchedBy(func(r domain.TimeLogRecord) bool {
			return r.TaskID == 3 && r.Seconds == 45 && r.Source == domain.SourceSwitch
		})).Return(nil).Once()

		require.NoError(t, f.session.Start(3, ""))
		f.clock.Advance(45 * time.Second)

		f.runCommand(t, f.model.applyTaskForm(TaskFormResult{TaskID: 4, SaveFirst: true}))
		assert.Equal(t, domain.TaskID(4), f.session.Snapshot().TaskID)
	})

	t.Run("switches without saving", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{})
		require.NoError(t, f.session.Start(3, ""))
		f.clock.Advance(45 * time.Second)

		f.runCommand(t, f.model.applyTaskForm(TaskFormResult{TaskID: 4}))
		snap := f.session.Snapshot()
		assert.Equal(t, domain.TaskID(4), snap.TaskID)
		assert.Equal(t, int64(0), snap.TotalSeconds)
	})

	t.Run("cancelled does nothing", func(t *testing.T) {
		f := newModelFixture(t, ModelOptions{})
		assert.Nil(t, f.model.applyTaskForm(TaskFormResult{Cancelled: true, TaskID: 4}))
		assert.Equal(t, domain.StateIdle, f.session.Snapshot().State)
	})
}

func TestModel_EventsUpdateSnapshot(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	require.NoError(t, f.session.Start(7, "pairing"))
	f.clock.Advance(3 * time.Second)

	for range 4 {
		event, ok := <-f.model.events
		require.True(t, ok)
		f.model.Update(timerEventMsg{event: event})
	}

	assert.Equal(t, int64(3), f.model.snapshot.TotalSeconds)
	assert.Equal(t, "Timer started for task #7", f.model.notifier.message, "ticks keep the last acknowledgement")

	view := f.model.View()
	assert.Contains(t, view, "Running")
	assert.Contains(t, view, "00:00:03")
	assert.Contains(t, view, "#7")
	assert.Contains(t, view, "pairing")
}

func TestModel_SaveFailedEventShowsError(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.model.Update(timerEventMsg{event: domain.Event{
		Type: domain.EventSaveFailed,
		Err:  errors.New("connection refused"),
	}})

	assert.Equal(t, noticeError, f.model.notifier.kind)
	assert.Contains(t, f.model.notifier.err.Error(), "connection refused")
}

func TestModel_ClosedSessionQuits(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.session.Close()
	require.True(t, f.session.Drain(context.Background()))

	// Events published during close are delivered before the close itself
	var msg tea.Msg
	for i := 0; i < eventBuffer; i++ {
		msg = waitForEvent(f.model.events)()
		if _, closed := msg.(timerClosedMsg); closed {
			break
		}
	}
	require.IsType(t, timerClosedMsg{}, msg)

	_, cmd := f.model.Update(msg)
	assert.True(t, isQuit(cmd))
}

func TestModel_IdleView(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	view := f.model.View()
	assert.Contains(t, view, "Idle")
	assert.Contains(t, view, "00:00:00")
	assert.Contains(t, view, "No task")
}
