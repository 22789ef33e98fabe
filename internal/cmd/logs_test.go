package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/tally/internal/domain"
)

func sampleLogs() []domain.StoredTimeLog {
	created := time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)
	return []domain.StoredTimeLog{
		{
			TimeLogRecord: domain.TimeLogRecord{
				Date:        "2026-10-19",
				Description: "code review",
				Hours:       1.5,
				ID:          "b",
				Seconds:     5400,
				Source:      domain.SourceCheckpoint,
				TaskID:      7,
			},
			CreatedAt: created,
		},
		{
			TimeLogRecord: domain.TimeLogRecord{
				Date:    "2026-10-18",
				Hours:   0.03,
				ID:      "a",
				Seconds: 90,
				Source:  domain.SourceSwitch,
				TaskID:  3,
			},
			CreatedAt: created.Add(-24 * time.Hour),
		},
	}
}

func TestWriteTimeLogs_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTimeLogs(&out, "table", sampleLogs()))

	text := out.String()
	assert.Contains(t, text, "DATE")
	assert.Contains(t, text, "#7")
	assert.Contains(t, text, "01:30:00")
	assert.Contains(t, text, "code review")
	assert.Contains(t, text, "2 log(s), 01:31:30 (1.53h)")
}

func TestWriteTimeLogs_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTimeLogs(&out, "table", nil))
	assert.Equal(t, "No time logs found.\n", out.String())
}

func TestWriteTimeLogs_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTimeLogs(&out, "json", sampleLogs()))

	var decoded timeLogListOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Logs, 2)
	assert.Equal(t, int64(7), decoded.Logs[0].TaskID)
	assert.Equal(t, "checkpoint", decoded.Logs[0].Source)
	assert.Equal(t, int64(5490), decoded.TotalSeconds)
	assert.Equal(t, 1.53, decoded.TotalHours)
}

func TestWriteTimeLogs_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTimeLogs(&out, "yaml", sampleLogs()))

	var decoded timeLogListOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Logs, 2)
	assert.Equal(t, "a", decoded.Logs[1].ID)
	assert.Equal(t, int64(90), decoded.Logs[1].Seconds)
	assert.Contains(t, out.String(), "task_id: 7")
}

func TestWriteTimeLogs_EmptyJSONHasNoNullList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeTimeLogs(&out, "json", nil))
	assert.Contains(t, out.String(), `"logs": []`)
}
