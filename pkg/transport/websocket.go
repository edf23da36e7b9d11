package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/otcore/collabtext/pkg/wrapped"
)

// Upgrader is the shared gorilla/websocket upgrader used by cmd/server.
// CheckOrigin is permissive; callers embedding this in a production
// deployment behind an untrusted origin should replace it.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WebSocket is a gorilla/websocket-backed transport implementing
// client.Transport, for a real Go client (as opposed to a browser) to
// talk to a collaboration server. Inbound frames are delivered to
// registered callbacks from a dedicated read goroutine; callers must
// treat those callbacks as the single logical event source client.Client
// requires.
type WebSocket struct {
	conn *websocket.Conn

	mu       sync.Mutex
	onOp     func(op *wrapped.Operation)
	onAck    func()
	onFrame  func(frame *ServerFrame)
	closed   bool
}

// Dial connects to a collaboration server's WebSocket endpoint.
func Dial(ctx context.Context, url string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return NewWebSocket(conn), nil
}

// NewWebSocket wraps an already-established connection, such as one
// returned by Upgrader.Upgrade in an HTTP handler.
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	return &WebSocket{conn: conn}
}

// OnOperation registers the callback invoked once for each operation in
// an inbound history frame, feeding client.Client.ApplyServer.
func (w *WebSocket) OnOperation(fn func(op *wrapped.Operation)) {
	w.mu.Lock()
	w.onOp = fn
	w.mu.Unlock()
}

// OnAck registers the callback invoked when an ack frame arrives,
// feeding client.Client.ServerAck.
func (w *WebSocket) OnAck(fn func()) {
	w.mu.Lock()
	w.onAck = fn
	w.mu.Unlock()
}

// OnFrame registers a callback for every inbound frame, including the
// identity/history/user_cursor/user_info frames outside the client core's
// concern, for the session/demo layer to handle directly.
func (w *WebSocket) OnFrame(fn func(frame *ServerFrame)) {
	w.mu.Lock()
	w.onFrame = fn
	w.mu.Unlock()
}

// SendOperation submits op as an "edit" frame, satisfying client.Transport.
func (w *WebSocket) SendOperation(revision int, op *wrapped.Operation) error {
	return w.conn.WriteJSON(ClientFrame{
		Type:      FrameEdit,
		Revision:  revision,
		Operation: op,
	})
}

// SendCursor submits a cursor update frame.
func (w *WebSocket) SendCursor(data CursorData) error {
	return w.conn.WriteJSON(ClientFrame{Type: FrameCursor, Data: &data})
}

// ReadLoop blocks reading frames from the connection and dispatching them
// to the registered callbacks. It returns when the connection closes or
// errors; callers run it on its own goroutine.
func (w *WebSocket) ReadLoop() error {
	for {
		var frame ServerFrame
		if err := w.conn.ReadJSON(&frame); err != nil {
			return err
		}

		w.mu.Lock()
		onOp, onAck, onFrame := w.onOp, w.onAck, w.onFrame
		w.mu.Unlock()

		switch frame.Type {
		case FrameHistory:
			if onOp != nil {
				for _, op := range frame.Operations {
					onOp(op)
				}
			}
		case FrameAck:
			if onAck != nil {
				onAck()
			}
		}
		if onFrame != nil {
			onFrame(&frame)
		}
	}
}

// Close closes the underlying connection.
func (w *WebSocket) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	return w.conn.Close()
}
