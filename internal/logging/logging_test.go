package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv("TALLY_DEBUG", "")
	t.Setenv("TALLY_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, path)
	require.NotNil(t, Logger)
	Logger.Info("dropped")
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("TALLY_DEBUG", "")
	t.Setenv("TALLY_DEBUG_FILE", "")
	debugFile := filepath.Join(t.TempDir(), "nested", "tally.log")

	path, err := Initialize(false, debugFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Info("hello from test", "task_id", 7)

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"task_id":7`)
}

func TestInitialize_InheritsDebugFileFromEnv(t *testing.T) {
	debugFile := filepath.Join(t.TempDir(), "child.log")
	t.Setenv("TALLY_DEBUG", "1")
	t.Setenv("TALLY_DEBUG_FILE", debugFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "notes.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 10))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.NoError(t, err)
}
