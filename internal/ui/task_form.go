package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/tally/internal/domain"
)

// TaskFormResult contains the task the user wants to time next
type TaskFormResult struct {
	Cancelled   bool
	Description string
	SaveFirst   bool
	TaskID      domain.TaskID
}

// TaskForm asks for a task id and description. When the timer carries
// unsaved time it also asks whether to save it before switching.
type TaskForm struct {
	Completed bool
	form      *huh.Form
	result    TaskFormResult
	taskInput string
}

// NewTaskForm creates a task form for the current timer snapshot
func NewTaskForm(current domain.Snapshot) *TaskForm {
	tf := &TaskForm{
		result: TaskFormResult{SaveFirst: true},
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Description("Task id to attribute time to (e.g. 42 or #42)").
				Value(&tf.taskInput).
				Validate(func(s string) error {
					if _, err := domain.ParseTaskID(s); err != nil {
						return fmt.Errorf("enter a positive task number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Description("Optional note saved with the time log").
				Value(&tf.result.Description),
		),
	}

	if current.HasUnsavedTime() {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save %s on task #%s first?", current.FormattedTime, current.TaskID)).
				Description("Choosing no discards the elapsed time").
				Affirmative("Save").
				Negative("Discard").
				Value(&tf.result.SaveFirst),
		))
	}

	tf.form = huh.NewForm(groups...)
	return tf
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		// Validated by the input above
		tf.result.TaskID, _ = domain.ParseTaskID(tf.taskInput)
		return tf, nil
	}

	return tf, cmd
}

func (tf *TaskForm) View() string {
	return tf.form.View()
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}
