//go:build !unix

package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/ports"
)

// FileLock is an exclusively created lock file. A crashed process leaves it
// behind; delete it by hand to recover.
type FileLock struct {
	path     string
	released bool
}

// Verify interface compliance at compile time
var _ ports.InstanceLock = (*FileLock)(nil)

// Acquire creates the lock file at path, failing with
// domain.ErrInstanceLocked when it already exists.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w (lock %s)", domain.ErrInstanceLocked, path)
		}
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
	file.Close()

	return &FileLock{path: path}, nil
}

// Path returns the lock file location
func (l *FileLock) Path() string {
	return l.path
}

// Release removes the lock file. Calling it more than once is safe.
func (l *FileLock) Release() error {
	if l == nil || l.released {
		return nil
	}
	l.released = true
	return os.Remove(l.path)
}
