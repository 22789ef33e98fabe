package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_StaleClearIsIgnored(t *testing.T) {
	n := NewNotifier(time.Second)

	n.Info("first")
	first := clearNoticeMsg{generation: n.generation}
	n.Warn("second")

	n.Clear(first)
	assert.True(t, n.Active())
	assert.Equal(t, "second", n.message)

	n.Clear(clearNoticeMsg{generation: n.generation})
	assert.False(t, n.Active())
}

func TestNotifier_ErrorAndDismiss(t *testing.T) {
	n := NewNotifier(time.Second)

	n.Error(errors.New("boom"))
	assert.True(t, n.Active())
	assert.Equal(t, noticeError, n.kind)

	n.Dismiss()
	assert.False(t, n.Active())
}
