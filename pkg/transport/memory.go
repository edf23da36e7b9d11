package transport

import (
	"errors"
	"sync"

	"github.com/otcore/collabtext/pkg/wrapped"
)

// ErrTransportClosed is returned by a Memory connection's SendOperation
// once the connection has been disconnected from its hub.
var ErrTransportClosed = errors.New("transport: connection is closed")

// Memory is an in-process hub connecting two or more peers without a
// network hop: each operation a peer sends is delivered to every other
// connected peer.
type Memory struct {
	mu    sync.Mutex
	peers map[string]*MemoryConn
}

// NewMemory returns an empty hub.
func NewMemory() *Memory {
	return &Memory{peers: make(map[string]*MemoryConn)}
}

// Connect registers a new peer under id and returns its connection
// handle, implementing client.Transport via SendOperation.
func (m *Memory) Connect(id string) *MemoryConn {
	conn := &MemoryConn{id: id, hub: m, inbox: make(chan *wrapped.Operation, 64)}
	m.mu.Lock()
	m.peers[id] = conn
	m.mu.Unlock()
	return conn
}

// Disconnect removes a peer and closes its inbox.
func (m *Memory) Disconnect(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conn, ok := m.peers[id]
	if !ok {
		return
	}
	delete(m.peers, id)
	conn.close()
}

// broadcast delivers op to every connected peer except sender, in the
// order Send was called for a given sender.
func (m *Memory) broadcast(senderID string, op *wrapped.Operation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.peers {
		if id == senderID {
			continue
		}
		conn.deliver(op)
	}
}

// MemoryConn is one peer's handle on a Memory hub.
type MemoryConn struct {
	id    string
	hub   *Memory
	mu    sync.Mutex
	inbox chan *wrapped.Operation
	done  bool
}

// SendOperation broadcasts op to every other peer on the hub, satisfying
// client.Transport. The revision argument is carried only for interface
// compatibility; Memory peers are otherwise homogeneous, untagged by
// revision.
func (c *MemoryConn) SendOperation(_ int, op *wrapped.Operation) error {
	c.mu.Lock()
	closed := c.done
	c.mu.Unlock()
	if closed {
		return ErrTransportClosed
	}
	c.hub.broadcast(c.id, op)
	return nil
}

// Inbox returns the channel of operations broadcast by other peers.
func (c *MemoryConn) Inbox() <-chan *wrapped.Operation { return c.inbox }

// Close disconnects this peer from its hub.
func (c *MemoryConn) Close() error {
	c.hub.Disconnect(c.id)
	return nil
}

func (c *MemoryConn) deliver(op *wrapped.Operation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.inbox <- op
}

func (c *MemoryConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.done = true
	close(c.inbox)
}
