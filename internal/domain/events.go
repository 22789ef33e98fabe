package domain

// EventType defines the type of timer event
type EventType string

const (
	EventDescription EventType = "description"
	EventPaused      EventType = "paused"
	EventReset       EventType = "reset"
	EventResumed     EventType = "resumed"
	EventSaveFailed  EventType = "save_failed"
	EventSaved       EventType = "saved"
	EventStarted     EventType = "started"
	EventTick        EventType = "tick"
	EventUnloaded    EventType = "unloaded"
)

// Event is a timer update for observers. Record is set on saves, Err on
// failed saves.
type Event struct {
	Err      error
	Record   *TimeLogRecord
	Snapshot Snapshot
	Type     EventType
}

// Acknowledgement returns the short user-facing message for an event,
// or "" for events that need none
func (e Event) Acknowledgement() string {
	switch e.Type {
	case EventStarted:
		return "Timer started for task #" + e.Snapshot.TaskID.String()
	case EventPaused:
		return "Timer paused at " + e.Snapshot.FormattedTime
	case EventResumed:
		return "Timer resumed"
	case EventReset:
		return "Timer reset"
	case EventSaved:
		if e.Record != nil {
			return "Saved " + FormatHours(e.Record.Hours) + "h on task #" + e.Record.TaskID.String()
		}
		return "Saved"
	case EventSaveFailed:
		if e.Err != nil {
			return "Save failed: " + e.Err.Error()
		}
		return "Save failed"
	default:
		return ""
	}
}
