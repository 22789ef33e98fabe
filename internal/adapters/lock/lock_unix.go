//go:build unix

// Package lock keeps a second tally process from driving the same timer
// state. The lock is an advisory flock on $TALLY_HOME/tally.lock, released by
// the kernel if the process dies.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// FileLock is an exclusive flock held for the life of the process
type FileLock struct {
	file *os.File
	path string
}

// Verify interface compliance at compile time
var _ ports.InstanceLock = (*FileLock)(nil)

// Acquire takes the lock at path without blocking. It fails with
// domain.ErrInstanceLocked when another process holds it.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			holder := readHolder(path)
			logging.Logger.Warn("Instance lock held by another process", "path", path, "holder_pid", holder)
			return nil, fmt.Errorf("%w (pid %s, lock %s)", domain.ErrInstanceLocked, holder, path)
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	// Record the owner for the error message above
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Path returns the lock file location
func (l *FileLock) Path() string {
	return l.path
}

// Release drops the lock. Calling it more than once is safe.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return l.file.Close()
}

func readHolder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "unknown"
	}
	return string(data)
}
