package oplog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerCreatesOnFirstFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superflush.log")
	l := NewFileLogger(path)

	// No failures logged yet: the file must not exist.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	l.Logf("chrome: %v", os.ErrPermission)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chrome: permission denied\n", string(data))
}

func TestFileLoggerAppendsWholeLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superflush.log")
	l := NewFileLogger(path)

	l.Logf("first failure")
	l.Logf("second failure")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first failure\nsecond failure\n", string(data))
}

func TestFileLoggerNeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superflush.log")
	require.NoError(t, os.WriteFile(path, []byte("old entry\n"), 0o644))

	NewFileLogger(path).Logf("new entry")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old entry\nnew entry\n", string(data))
}

func TestFileLoggerSwallowsWriteFailures(t *testing.T) {
	// A directory path cannot be opened for appending; logging must
	// stay a no-op rather than failing the operation.
	l := NewFileLogger(t.TempDir())
	l.Logf("dropped")
}

func TestMemoryLoggerCaptures(t *testing.T) {
	var l MemoryLogger
	l.Logf("edge: %s", "locked")
	l.Logf("firefox: %s", "gone")

	assert.Equal(t, []string{"edge: locked", "firefox: gone"}, l.Lines())

	// Lines returns a copy.
	l.Lines()[0] = "mutated"
	assert.Equal(t, "edge: locked", l.Lines()[0])
}
