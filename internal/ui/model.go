package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
)

type uiState int

const (
	stateTimer uiState = iota
	stateConfirmingReset
	stateEditingDescription
	stateHelp
	stateSelectingTask
)

// eventBuffer is how many timer events a terminal may lag behind before the
// oldest ones are dropped
const eventBuffer = 32

// ModelOptions configures a Model
type ModelOptions struct {
	ConfirmReset bool                     // Ask before discarding elapsed time
	DevMode      bool                     // Show version details in the header
	KeysConfig   config.KeyBindingsConfig // Custom key bindings from settings.json
	NoticeDelay  time.Duration            // How long acknowledgements stay on screen
	Remote       bool                     // Attached over SSH: quitting only detaches
	SaveTimeout  time.Duration            // Deadline for saves started from the keyboard
}

// Model is the timer screen. Every terminal showing the timer (local or over
// SSH) gets its own Model observing the same SessionContext.
type Model struct {
	confirmReset bool
	devMode      bool
	dialog       *Dialog
	events       <-chan domain.Event
	height       int
	help         help.Model
	keys         KeyMap
	notifier     *Notifier
	quitPending  bool
	remote       bool
	saveTimeout  time.Duration
	session      *services.SessionContext
	snapshot     domain.Snapshot
	state        uiState
	unsubscribe  func()
	width        int
}

// NewModel subscribes to session and returns the timer screen. Call Close once
// the program exits to drop the subscription.
func NewModel(session *services.SessionContext, opts ModelOptions) *Model {
	if opts.NoticeDelay <= 0 {
		opts.NoticeDelay = 5 * time.Second
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = services.DefaultSaveTimeout
	}

	events, unsubscribe := session.Subscribe(eventBuffer)

	return &Model{
		confirmReset: opts.ConfirmReset,
		devMode:      opts.DevMode,
		events:       events,
		help:         help.New(),
		keys:         NewKeyMap(opts.KeysConfig),
		notifier:     NewNotifier(opts.NoticeDelay),
		remote:       opts.Remote,
		saveTimeout:  opts.SaveTimeout,
		session:      session,
		snapshot:     session.Snapshot(),
		state:        stateTimer,
		unsubscribe:  unsubscribe,
	}
}

// Close drops the event subscription
func (m *Model) Close() {
	m.unsubscribe()
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case timerEventMsg:
		return m, m.handleEvent(msg.event)

	case timerClosedMsg:
		logging.Logger.Info("Timer closed, leaving UI")
		return m, tea.Quit

	case commandDoneMsg:
		if msg.err != nil {
			logging.Logger.Warn("Timer command failed", "action", msg.action, "error", msg.err)
			return m, m.notifier.Error(msg.err)
		}
		return m, nil

	case clearNoticeMsg:
		m.notifier.Clear(msg)
		return m, nil
	}

	if m.state == stateTimer {
		return m.updateTimer(msg)
	}
	return m.updateDialog(msg)
}

// handleEvent refreshes the snapshot and keeps listening
func (m *Model) handleEvent(event domain.Event) tea.Cmd {
	m.snapshot = event.Snapshot
	next := waitForEvent(m.events)

	if !m.snapshot.HasUnsavedTime() {
		m.quitPending = false
	}

	switch event.Type {
	case domain.EventTick, domain.EventUnloaded, domain.EventDescription:
		return next
	case domain.EventSaveFailed:
		return tea.Batch(next, m.notifier.Error(fmt.Errorf("save failed: %w", event.Err)))
	}

	if ack := event.Acknowledgement(); ack != "" {
		return tea.Batch(next, m.notifier.Info(ack))
	}
	return next
}

func (m *Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}
	if key.Matches(keyMsg, m.keys.Application.Quit) {
		return m.handleQuit()
	}
	m.quitPending = false

	switch {
	case key.Matches(keyMsg, m.keys.Application.Help):
		return m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case key.Matches(keyMsg, m.keys.Timer.TogglePause):
		if m.session.Snapshot().TaskID.IsZero() {
			return m.openDialog(stateSelectingTask, "Start Task", NewTaskForm(m.session.Snapshot()))
		}
		return m, m.run("toggle_pause", m.session.TogglePause)

	case key.Matches(keyMsg, m.keys.Timer.Checkpoint):
		return m, m.run("checkpoint", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
			defer cancel()
			return m.session.SaveCurrentSession(ctx, false)
		})

	case key.Matches(keyMsg, m.keys.Timer.Stop):
		return m, m.run("stop", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
			defer cancel()
			return m.session.StopAndSave(ctx)
		})

	case key.Matches(keyMsg, m.keys.Timer.SwitchTask):
		current := m.session.Snapshot()
		title := "Start Task"
		if !current.TaskID.IsZero() {
			title = "Switch Task"
		}
		return m.openDialog(stateSelectingTask, title, NewTaskForm(current))

	case key.Matches(keyMsg, m.keys.Timer.Description):
		current := m.session.Snapshot()
		if current.TaskID.IsZero() {
			return m, m.notifier.Error(domain.ErrNoActiveSession)
		}
		return m.openDialog(stateEditingDescription, "Edit Description", NewDescriptionForm(current.Description))

	case key.Matches(keyMsg, m.keys.Timer.Reset):
		current := m.session.Snapshot()
		if current.TaskID.IsZero() {
			return m, nil
		}
		if m.confirmReset && current.HasUnsavedTime() {
			return m.openDialog(stateConfirmingReset, "Reset Timer", NewResetConfirm(current))
		}
		m.session.ResetTimer()
		return m, nil
	}

	return m, nil
}

// handleQuit asks for a second q when quitting would leave time unsaved.
// Remote terminals only detach, so they never ask.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.remote {
		return m, tea.Quit
	}

	m.snapshot = m.session.Snapshot()
	if !m.snapshot.HasUnsavedTime() || m.quitPending {
		return m, tea.Quit
	}

	m.quitPending = true
	var warning string
	if m.snapshot.IsRunning() {
		warning = fmt.Sprintf("%s on task #%s will be saved on exit, if the save succeeds. Press q again to quit.",
			m.snapshot.FormattedTime, m.snapshot.TaskID)
	} else {
		warning = fmt.Sprintf("Paused time %s on task #%s will be lost. Press q again to quit.",
			m.snapshot.FormattedTime, m.snapshot.TaskID)
	}
	logging.Logger.Info("Quit requested with unsaved time",
		"task_id", m.snapshot.TaskID,
		"unsaved_seconds", m.snapshot.TotalSeconds)
	return m, m.notifier.Warn(warning)
}

func (m *Model) openDialog(state uiState, title string, content tea.Model) (tea.Model, tea.Cmd) {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state

	initCmd := m.dialog.Init()
	updated, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dialog = updated.(*Dialog)
	return m, tea.Batch(initCmd, sizeCmd)
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = stateTimer
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dialog == nil {
		m.state = stateTimer
		return m, nil
	}

	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)

	switch content := m.dialog.Content().(type) {
	case *HelpScreen:
		if content.Completed {
			m.closeDialog()
			return m, nil
		}
	case *TaskForm:
		if content.Completed {
			m.closeDialog()
			return m, m.applyTaskForm(content.Result())
		}
	case *DescriptionForm:
		if content.Completed {
			m.closeDialog()
			if content.Cancelled {
				return m, nil
			}
			text := content.Description()
			return m, m.run("description", func() error {
				return m.session.UpdateDescription(text)
			})
		}
	case *ResetConfirm:
		if content.Completed {
			m.closeDialog()
			if content.Confirmed {
				m.session.ResetTimer()
			}
			return m, nil
		}
	}

	return m, cmd
}

// applyTaskForm starts, resumes or switches to the chosen task
func (m *Model) applyTaskForm(result TaskFormResult) tea.Cmd {
	if result.Cancelled {
		return nil
	}

	current := m.session.Snapshot()
	if current.TaskID.IsZero() || (current.TaskID == result.TaskID && !current.IsRunning()) {
		return m.run("start", func() error {
			return m.session.Start(result.TaskID, result.Description)
		})
	}

	return m.run("switch_task", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
		defer cancel()
		return m.session.SwitchTask(ctx, result.TaskID, result.Description, result.SaveFirst)
	})
}

// run executes a timer command off the UI loop. Saves can block on storage.
func (m *Model) run(action string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{action: action, err: fn()}
	}
}

func (m *Model) View() string {
	if m.state != stateTimer && m.dialog != nil {
		return m.dialog.View()
	}
	return m.renderTimer()
}
