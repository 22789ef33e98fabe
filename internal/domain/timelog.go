package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used on time-log records
const DateLayout = "2006-01-02"

// AutoSaveDescription is attached to automatic checkpoints that carry no description
const AutoSaveDescription = "automatic work session"

// SaveSource records which path produced a time log
type SaveSource string

const (
	SourceAuto       SaveSource = "auto"
	SourceCheckpoint SaveSource = "checkpoint"
	SourceManual     SaveSource = "manual"
	SourceSwitch     SaveSource = "switch"
	SourceUnload     SaveSource = "unload"
)

// TimeLogRecord is a completed stretch of work handed to the persistence gateway
type TimeLogRecord struct {
	Date        string
	Description string
	Hours       float64
	ID          string
	Seconds     int64
	Source      SaveSource
	TaskID      TaskID
}

// NewTimeLogRecord builds a record dated on the local calendar day of at.
// The ID is generated client-side so gateways can drop duplicates.
func NewTimeLogRecord(taskID TaskID, seconds int64, description string, source SaveSource, at time.Time) TimeLogRecord {
	return TimeLogRecord{
		Date:        at.Local().Format(DateLayout),
		Description: description,
		Hours:       HoursFromSeconds(seconds),
		ID:          uuid.New().String(),
		Seconds:     seconds,
		Source:      source,
		TaskID:      taskID,
	}
}

// StoredTimeLog is a time log as read back from the gateway
type StoredTimeLog struct {
	TimeLogRecord
	CreatedAt time.Time
}

// TimeLogFilter narrows time-log listings. Zero fields do not filter.
type TimeLogFilter struct {
	Limit  int
	Since  string // inclusive, DateLayout
	TaskID TaskID
	Until  string // inclusive, DateLayout
}
