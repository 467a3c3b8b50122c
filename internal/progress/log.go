// Package progress provides the append-only log shared between a project
// creation and its background build.
package progress

import (
	"fmt"
	"strings"
	"sync"
)

// Log is an append-only, goroutine-safe text buffer.
// The lock is held only while an entry is appended or a snapshot is taken.
type Log struct {
	mu      sync.Mutex
	buf     strings.Builder
	entries int
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append adds text as one entry, terminating it with a newline if needed.
// A multi-line text is appended atomically.
func (l *Log) Append(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	l.mu.Lock()
	l.buf.WriteString(text)
	l.entries++
	l.mu.Unlock()
}

// Appendf formats and appends one entry.
func (l *Log) Appendf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// String returns a snapshot of the whole log.
func (l *Log) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// Len returns the size of the log in bytes.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Len()
}

// Entries returns the number of appends so far.
func (l *Log) Entries() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries
}

// Since returns the text appended after offset and the new offset.
// Consumers poll with the returned offset to read incrementally.
func (l *Log) Since(offset int) (string, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.buf.String()
	if offset < 0 || offset > len(s) {
		offset = len(s)
	}
	return s[offset:], len(s)
}

// Lines returns the snapshot split into lines, without the trailing empty line.
func (l *Log) Lines() []string {
	s := strings.TrimSuffix(l.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
