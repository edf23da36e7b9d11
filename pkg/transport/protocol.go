// Package transport provides concrete realizations of the network-side
// adapter consumed by pkg/client: an in-process hub for tests and demos,
// and a WebSocket transport for real browser/editor integrations.
package transport

import "github.com/otcore/collabtext/pkg/wrapped"

// FrameType discriminates the wire frames exchanged between a client and
// the collaboration server.
type FrameType string

const (
	// Client → server frames.
	FrameEdit   FrameType = "edit"
	FrameCursor FrameType = "cursor"

	// Server → client frames.
	FrameIdentity   FrameType = "identity"
	FrameHistory    FrameType = "history"
	FrameAck        FrameType = "ack"
	FrameUserCursor FrameType = "user_cursor"
	FrameUserInfo   FrameType = "user_info"
)

// CursorData carries a rune-indexed cursor/selection position.
type CursorData struct {
	Position     int `json:"position"`
	SelectionEnd int `json:"selectionEnd"`
}

// UserInfo carries presence metadata about a connected collaborator.
type UserInfo struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// ClientFrame is a frame sent from a client to the server.
type ClientFrame struct {
	Type      FrameType          `json:"type"`
	Revision  int                `json:"revision,omitempty"`
	Operation *wrapped.Operation `json:"operation,omitempty"`
	Data      *CursorData        `json:"data,omitempty"`
}

// ServerFrame is a frame sent from the server to a client.
type ServerFrame struct {
	Type       FrameType            `json:"type"`
	ID         int                  `json:"id,omitempty"`
	Start      int                  `json:"start,omitempty"`
	Operations []*wrapped.Operation `json:"operations,omitempty"`
	Data       *CursorData          `json:"data,omitempty"`
	Info       *UserInfo            `json:"info,omitempty"`
}
