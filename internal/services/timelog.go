package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// TimeLogService reads back what the gateway recorded
type TimeLogService struct {
	reader ports.TimeLogReader
}

// NewTimeLogService creates a new TimeLogService
func NewTimeLogService(reader ports.TimeLogReader) *TimeLogService {
	return &TimeLogService{
		reader: reader,
	}
}

// ListTimeLogs validates the filter and returns matching logs, newest first
func (s *TimeLogService) ListTimeLogs(ctx context.Context, filter domain.TimeLogFilter) ([]domain.StoredTimeLog, error) {
	for _, date := range []string{filter.Since, filter.Until} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
		}
	}
	if filter.Since != "" && filter.Until != "" && filter.Since > filter.Until {
		return nil, fmt.Errorf("since %s is after until %s", filter.Since, filter.Until)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %d", filter.Limit)
	}

	logging.Logger.Debug("Listing time logs",
		"task_id", filter.TaskID,
		"since", filter.Since,
		"until", filter.Until,
		"limit", filter.Limit)

	logs, err := s.reader.ListTimeLogs(ctx, filter)
	if err != nil {
		logging.Logger.Error("Failed to list time logs", "error", err)
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	return logs, nil
}

// GetTimeLog returns a single time log by id
func (s *TimeLogService) GetTimeLog(ctx context.Context, id string) (*domain.StoredTimeLog, error) {
	log, err := s.reader.GetTimeLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get time log %s: %w", id, err)
	}
	return log, nil
}

// TotalSeconds sums the exact seconds of logs
func TotalSeconds(logs []domain.StoredTimeLog) int64 {
	var total int64
	for _, l := range logs {
		total += l.Seconds
	}
	return total
}
