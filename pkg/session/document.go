// Package session holds the server-side counterpart to pkg/client: the
// authoritative document text, its operation history, and per-client
// presence, driving the transform-against-history reconciliation every
// accepted edit requires.
package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/otcore/collabtext/pkg/ot"
	"github.com/otcore/collabtext/pkg/transport"
	"github.com/otcore/collabtext/pkg/wrapped"
)

// ErrDocumentSizeExceeded is returned by ApplyEdit when the resulting
// document would exceed the configured maximum size.
var ErrDocumentSizeExceeded = errors.New("session: resulting document exceeds maximum size")

// ErrRevisionOutOfRange is returned by ApplyEdit when the client's claimed
// revision is newer than the document's actual history.
var ErrRevisionOutOfRange = errors.New("session: revision is newer than document history")

// Document is the authoritative state for one collaboratively-edited text:
// the current content, the full operation history (its length is the
// current revision), and presence metadata transformed alongside every
// accepted edit so a client's cursor never points at stale text.
type Document struct {
	mu sync.RWMutex

	text       string
	operations []*wrapped.Operation
	users      map[int]transport.UserInfo
	cursors    map[int]transport.CursorData

	maxDocumentSize int
	nextClientID    atomic.Int64
	lastEditTime    atomic.Int64

	subscribers map[int]chan *transport.ServerFrame
}

// NewDocument returns an empty Document capped at maxDocumentSize runes.
func NewDocument(maxDocumentSize int) *Document {
	return &Document{
		users:           make(map[int]transport.UserInfo),
		cursors:         make(map[int]transport.CursorData),
		maxDocumentSize: maxDocumentSize,
		subscribers:     make(map[int]chan *transport.ServerFrame),
	}
}

// NextClientID returns a fresh client identifier, monotonically increasing
// from zero.
func (d *Document) NextClientID() int {
	return int(d.nextClientID.Add(1) - 1)
}

// Revision returns the number of accepted operations: the revision the
// next ApplyEdit call is expected to be based on.
func (d *Document) Revision() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.operations)
}

// Text returns the current document content.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// History returns every accepted operation from start onward.
func (d *Document) History(start int) []*wrapped.Operation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if start >= len(d.operations) {
		return nil
	}
	out := make([]*wrapped.Operation, len(d.operations)-start)
	copy(out, d.operations[start:])
	return out
}

// Subscribe registers clientID for broadcast frames, returning the channel
// frames will arrive on.
func (d *Document) Subscribe(clientID int, bufferSize int) <-chan *transport.ServerFrame {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch := make(chan *transport.ServerFrame, bufferSize)
	d.subscribers[clientID] = ch
	return ch
}

// Unsubscribe removes clientID's broadcast channel and its presence data.
func (d *Document) Unsubscribe(clientID int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ch, ok := d.subscribers[clientID]; ok {
		close(ch)
		delete(d.subscribers, clientID)
	}
	delete(d.users, clientID)
	delete(d.cursors, clientID)
}

func (d *Document) broadcastExcept(senderID int, frame *transport.ServerFrame) {
	for id, ch := range d.subscribers {
		if id == senderID {
			continue
		}
		select {
		case ch <- frame:
		default:
		}
	}
}

// ApplyEdit transforms op against every historical operation accepted
// after revision, applies the result to the document, appends it to
// history, transforms every connected user's cursor through it, and
// broadcasts the accepted operation to every client but clientID.
func (d *Document) ApplyEdit(clientID int, revision int, op *wrapped.Operation) (*wrapped.Operation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastEditTime.Store(time.Now().Unix())

	current := len(d.operations)
	if revision > current {
		return nil, ErrRevisionOutOfRange
	}

	transformed := op
	for _, hist := range d.operations[revision:] {
		aPrime, _, err := wrapped.Transform(transformed, hist)
		if err != nil {
			return nil, fmt.Errorf("session: transform against history failed: %w", err)
		}
		transformed = aPrime
	}

	if transformed.Op.TargetLength() > d.maxDocumentSize {
		return nil, ErrDocumentSizeExceeded
	}

	newText, err := transformed.Apply(d.text)
	if err != nil {
		return nil, fmt.Errorf("session: apply failed: %w", err)
	}

	for id, cursor := range d.cursors {
		d.cursors[id] = transport.CursorData{
			Position:     transformIndex(transformed.Op, cursor.Position),
			SelectionEnd: transformIndex(transformed.Op, cursor.SelectionEnd),
		}
	}

	d.operations = append(d.operations, transformed)
	d.text = newText

	d.broadcastExcept(clientID, &transport.ServerFrame{
		Type:       transport.FrameHistory,
		Start:      current,
		Operations: []*wrapped.Operation{transformed},
	})

	return transformed, nil
}

// SetCursor updates a client's cursor/selection and broadcasts it.
func (d *Document) SetCursor(clientID int, data transport.CursorData) {
	d.mu.Lock()
	d.cursors[clientID] = data
	d.mu.Unlock()

	d.mu.RLock()
	defer d.mu.RUnlock()
	d.broadcastExcept(clientID, &transport.ServerFrame{
		Type: transport.FrameUserCursor,
		ID:   clientID,
		Data: &data,
	})
}

// SetUserInfo updates a client's presence metadata and broadcasts it.
func (d *Document) SetUserInfo(clientID int, info transport.UserInfo) {
	d.mu.Lock()
	d.users[clientID] = info
	d.mu.Unlock()

	d.mu.RLock()
	defer d.mu.RUnlock()
	d.broadcastExcept(clientID, &transport.ServerFrame{
		Type: transport.FrameUserInfo,
		ID:   clientID,
		Info: &info,
	})
}

// RemoveUser drops a client's presence and notifies the rest.
func (d *Document) RemoveUser(clientID int) {
	d.Unsubscribe(clientID)

	d.mu.RLock()
	defer d.mu.RUnlock()
	d.broadcastExcept(clientID, &transport.ServerFrame{
		Type: transport.FrameUserInfo,
		ID:   clientID,
		Info: nil,
	})
}

// transformIndex transforms a rune-indexed cursor position through op, the
// way the client-side editor would move its own cursor in response to the
// same operation.
func transformIndex(op *ot.Operation, position int) int {
	index := position
	newIndex := position

	for _, action := range op.Actions() {
		switch a := action.(type) {
		case ot.RetainAction:
			index -= int(a)
		case ot.InsertAction:
			newIndex += len([]rune(string(a)))
		case ot.DeleteAction:
			n := int(a)
			if index >= n {
				newIndex -= n
			} else if index > 0 {
				newIndex -= index
			}
			index -= n
		}
		if index < 0 {
			break
		}
	}

	if newIndex < 0 {
		return 0
	}
	return newIndex
}
