package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/adapters/clock"
	portsmocks "github.com/renato0307/tally/internal/ports/mocks"
	"github.com/renato0307/tally/internal/services"
)

func newTestSession(t *testing.T) *services.SessionContext {
	t.Helper()
	gateway := portsmocks.NewMockTimeLogWriter(t)
	timer := services.NewTimerService(gateway, services.TimerOptions{Clock: clock.NewFake(time.Now())})
	return services.NewSessionContext(timer)
}

func TestNewServer(t *testing.T) {
	dir := t.TempDir()

	s, err := NewServer(newTestSession(t), Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "localhost",
		HostKeyPath:        filepath.Join(dir, "ssh", "id_ed25519"),
		Port:               23234,
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:23234", s.Addr())
	assert.FileExists(t, filepath.Join(dir, "ssh", "id_ed25519"))
	assert.True(t, s.modelOpts.Remote)
}

func TestStart_StopsWhenSessionCloses(t *testing.T) {
	dir := t.TempDir()
	session := newTestSession(t)

	s, err := NewServer(session, Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyPath:        filepath.Join(dir, "id_ed25519"),
		Port:               0,
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Start(context.Background())
	}()

	session.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop after the session closed")
	}
}
