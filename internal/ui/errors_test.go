package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/tally/internal/domain"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		want     string
	}{
		{name: "nil", err: nil, maxWidth: 80, want: ""},
		{name: "empty message", err: errors.New(""), maxWidth: 80, want: "Error: unknown error"},
		{name: "fits on one line", err: errors.New("no active session"), maxWidth: 80, want: "Error: no active session"},
		{
			name:     "wraps onto exactly two lines without truncating",
			err:      errors.New("failed to save time log: database is locked"),
			maxWidth: 30,
			want:     "Error: failed to save time\nlog: database is locked",
		},
		{
			name:     "wrapped precondition keeps its context",
			err:      fmt.Errorf("cannot pause: %w", domain.ErrNotRunning),
			maxWidth: 80,
			want:     "Error: cannot pause: timer is not running",
		},
		{
			name:     "intermediate failed-to layers are dropped",
			err:      fmt.Errorf("save failed: %w", fmt.Errorf("failed to save time log: %w", fmt.Errorf("failed to create time log: %w", errors.New("database is locked")))),
			maxWidth: 80,
			want:     "Error: save failed: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_Truncates(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(err, 30)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	for _, line := range lines[1:] {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestCompactErrorChain(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{message: "database is locked", want: "database is locked"},
		{message: "failed to save time log: database is locked", want: "failed to save time log: database is locked"},
		{message: "save failed: failed to create time log: disk full", want: "save failed: disk full"},
		{message: "cannot start task #2: task conflict: bound to #1", want: "cannot start task #2: task conflict: bound to #1"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, compactErrorChain(tt.message))
		})
	}
}
