// Package oplog is the append-only failure log shared by all cleanup
// operations. Every operation receives a Logger explicitly; there is no
// hidden global sink.
package oplog

import (
	"fmt"
	"os"
	"sync"
)

// Logger records one failure message per call. Implementations must be
// safe for concurrent use; the file sink guarantees whole-line appends.
type Logger interface {
	Logf(format string, args ...any)
}

// ─── File sink ───────────────────────────────────────────────────────────────

// FileLogger appends failure lines to a plain-text file. The file is
// created on first failure and never rotated, truncated, or read back.
type FileLogger struct {
	mu   sync.Mutex
	path string
}

// NewFileLogger returns a file sink writing to path. The file is not
// touched until the first failure is logged.
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

// Logf appends one line. The mutex serializes writers so concurrent
// operations never interleave partial lines. A log write that itself
// fails is dropped; logging must never fail an operation.
func (l *FileLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, format+"\n", args...)
}

// ─── Test sinks ──────────────────────────────────────────────────────────────

// MemoryLogger captures log lines in memory for tests.
type MemoryLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *MemoryLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of everything logged so far.
func (l *MemoryLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Logf(string, ...any) {}
