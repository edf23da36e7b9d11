// Package editor provides concrete realizations of the editor-side adapter
// consumed by pkg/client: an in-memory text buffer for tests, and a
// diff-based adapter for editors that only report whole-document
// snapshots rather than structured change events.
package editor

import (
	"sync"

	"github.com/otcore/collabtext/pkg/ot"
)

// Buffer is an in-memory string document behind a mutex, implementing
// client.Editor and giving tests a place to drive and observe local
// edits.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// NewBuffer returns a Buffer seeded with initial.
func NewBuffer(initial string) *Buffer {
	return &Buffer{text: initial}
}

// ApplyOperation applies op to the buffer's text, satisfying client.Editor.
func (b *Buffer) ApplyOperation(op *ot.Operation) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, err := op.Apply(b.text)
	if err != nil {
		return err
	}
	b.text = next
	return nil
}

// Snapshot returns the buffer's current text.
func (b *Buffer) Snapshot() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Replace overwrites the buffer's text directly, bypassing the operation
// algebra — used by tests to set up a starting document.
func (b *Buffer) Replace(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}
