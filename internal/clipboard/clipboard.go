// Package clipboard copies drafts to the system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard unavailable: install xclip, xsel or wl-clipboard")

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// Available reports whether a system clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// System writes to the operating system clipboard.
type System struct{}

func (System) Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory keeps everything written to it. Used when the system clipboard
// is unavailable and in tests.
type Memory struct {
	mu      sync.Mutex
	entries []string
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, text)
	return nil
}

// Last returns the most recent entry, or "" if nothing was written.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[len(m.entries)-1]
}

// Entries returns a copy of everything written so far.
func (m *Memory) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.entries...)
}
