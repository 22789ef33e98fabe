package ports

import (
	"context"

	"github.com/renato0307/tally/internal/domain"
)

// TimeLogWriter durably records completed work sessions.
// Retries and idempotency belong to the implementation, not to callers.
type TimeLogWriter interface {
	CreateTimeLog(ctx context.Context, record domain.TimeLogRecord) error
}

// TimeLogReader reads recorded time logs back
type TimeLogReader interface {
	GetTimeLog(ctx context.Context, id string) (*domain.StoredTimeLog, error)
	ListTimeLogs(ctx context.Context, filter domain.TimeLogFilter) ([]domain.StoredTimeLog, error)
}

// TimeLogRepository is the composite interface
type TimeLogRepository interface {
	TimeLogReader
	TimeLogWriter
	Close() error
}
