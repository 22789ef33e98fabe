package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
	portsmocks "github.com/renato0307/tally/internal/ports/mocks"
)

func TestListTimeLogs(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.TimeLogFilter
		callsRepo bool
		wantErr   string
	}{
		{
			name:      "empty filter",
			filter:    domain.TimeLogFilter{},
			callsRepo: true,
		},
		{
			name:      "date range",
			filter:    domain.TimeLogFilter{Since: "2026-10-01", Until: "2026-10-19", TaskID: 7},
			callsRepo: true,
		},
		{
			name:    "malformed since",
			filter:  domain.TimeLogFilter{Since: "yesterday"},
			wantErr: "invalid date",
		},
		{
			name:    "inverted range",
			filter:  domain.TimeLogFilter{Since: "2026-10-19", Until: "2026-10-01"},
			wantErr: "is after until",
		},
		{
			name:    "negative limit",
			filter:  domain.TimeLogFilter{Limit: -1},
			wantErr: "limit must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockTimeLogRepository(t)
			want := []domain.StoredTimeLog{{TimeLogRecord: domain.TimeLogRecord{ID: "a", Seconds: 60}}}
			if tt.callsRepo {
				repo.EXPECT().ListTimeLogs(context.Background(), tt.filter).Return(want, nil).Once()
			}

			logs, err := NewTimeLogService(repo).ListTimeLogs(context.Background(), tt.filter)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, logs)
		})
	}
}

func TestListTimeLogs_RepositoryError(t *testing.T) {
	repo := portsmocks.NewMockTimeLogRepository(t)
	repoErr := errors.New("disk I/O error")
	repo.EXPECT().ListTimeLogs(context.Background(), domain.TimeLogFilter{}).Return(nil, repoErr).Once()

	_, err := NewTimeLogService(repo).ListTimeLogs(context.Background(), domain.TimeLogFilter{})
	assert.ErrorIs(t, err, repoErr)
}

func TestGetTimeLog(t *testing.T) {
	repo := portsmocks.NewMockTimeLogRepository(t)
	repo.EXPECT().GetTimeLog(context.Background(), "missing").Return(nil, domain.ErrTimeLogNotFound).Once()

	_, err := NewTimeLogService(repo).GetTimeLog(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTimeLogNotFound)
}

func TestTotalSeconds(t *testing.T) {
	logs := []domain.StoredTimeLog{
		{TimeLogRecord: domain.TimeLogRecord{Seconds: 90}},
		{TimeLogRecord: domain.TimeLogRecord{Seconds: 15}},
	}
	assert.Equal(t, int64(105), TotalSeconds(logs))
	assert.Equal(t, int64(0), TotalSeconds(nil))
}
