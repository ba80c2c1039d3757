// Package clipboard provides a narrow interface over the host system
// clipboard, carrying plain text only.
package clipboard

import (
	"sync"

	atotto "github.com/atotto/clipboard"
)

// Clipboard reads, writes and clears the shared system clipboard.
//
// Access is serialized by the host OS; implementations do not add their
// own locking around the underlying facility.
type Clipboard interface {
	// Get returns the current clipboard text.
	Get() (string, error)

	// Set replaces the clipboard contents with text.
	Set(text string) error

	// Clear empties the clipboard.
	Clear() error
}

// System returns the Clipboard backed by the operating system, using
// the native API on Windows and macOS and an external helper (xclip,
// xsel or wl-clipboard) on other platforms.
func System() Clipboard {
	return systemClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) Get() (string, error) {
	return atotto.ReadAll()
}

func (systemClipboard) Set(text string) error {
	return atotto.WriteAll(text)
}

func (systemClipboard) Clear() error {
	return atotto.WriteAll("")
}

// Mem is an in-memory Clipboard for tests. When Err is set, every
// operation fails with it and the stored text is left untouched.
type Mem struct {
	Err error

	mu   sync.Mutex
	text string
}

func (m *Mem) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

func (m *Mem) Set(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

func (m *Mem) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = ""
	return nil
}

var (
	_ Clipboard = systemClipboard{}
	_ Clipboard = (*Mem)(nil)
)
