// Package client implements the three-state synchronization controller a
// collaborative editor runs locally: it mediates between local edits
// arriving from the editor, remote edits arriving from the server, and
// acknowledgements of the client's own outstanding edit, keeping the local
// document converged with the server's under any interleaving of the three.
package client

import "github.com/otcore/collabtext/pkg/wrapped"

// State names the client's synchronization state.
type State int

const (
	// Synchronized: no local operation in flight.
	Synchronized State = iota
	// AwaitingConfirm: one operation sent, awaiting the server's ack.
	AwaitingConfirm
	// AwaitingWithBuffer: one operation in flight, and further local
	// edits have accumulated in a buffer behind it.
	AwaitingWithBuffer
)

func (s State) String() string {
	switch s {
	case Synchronized:
		return "synchronized"
	case AwaitingConfirm:
		return "awaiting-confirm"
	case AwaitingWithBuffer:
		return "awaiting-with-buffer"
	default:
		return "unknown"
	}
}

// Client drives the synchronization state machine for a single document on
// a single connection. It is not safe for concurrent use: the transport
// and editor adapters it is wired to are responsible for serializing
// callbacks into a single logical event source.
type Client struct {
	revision    int
	state       State
	outstanding *wrapped.Operation
	buffer      *wrapped.Operation
	docLength   int

	editor    Editor
	transport Transport
}

// New returns a Client in the Synchronized state, expecting revision next
// and believing the local document has the given rune length.
func New(revision, docLength int, editor Editor, transport Transport) *Client {
	return &Client{
		revision:  revision,
		state:     Synchronized,
		docLength: docLength,
		editor:    editor,
		transport: transport,
	}
}

// Revision returns the server revision the client expects next.
func (c *Client) Revision() int { return c.revision }

// State returns the client's current synchronization state.
func (c *Client) State() State { return c.state }

// Outstanding returns the operation sent but not yet acknowledged, or nil
// if the client is Synchronized.
func (c *Client) Outstanding() *wrapped.Operation { return c.outstanding }

// Buffer returns the locally buffered operation accumulated behind the
// outstanding one, or nil unless the client is AwaitingWithBuffer.
func (c *Client) Buffer() *wrapped.Operation { return c.buffer }

// expectedBaseLength is the rune length of the document the server is
// presently at, from this client's point of view: the outstanding
// operation's base length while one is in flight, or the tracked document
// length when Synchronized.
func (c *Client) expectedBaseLength() int {
	if c.outstanding != nil {
		return c.outstanding.Op.BaseLength()
	}
	return c.docLength
}

// ApplyClient handles a local edit produced by the editor adapter.
func (c *Client) ApplyClient(op *wrapped.Operation) error {
	switch c.state {
	case Synchronized:
		if c.transport == nil {
			return ErrNotImplemented
		}
		if err := c.transport.SendOperation(c.revision, op); err != nil {
			return err
		}
		c.outstanding = op
		c.state = AwaitingConfirm
		return nil

	case AwaitingConfirm:
		c.buffer = op
		c.state = AwaitingWithBuffer
		return nil

	case AwaitingWithBuffer:
		composed, err := wrapped.Compose(c.buffer, op)
		if err != nil {
			return err
		}
		c.buffer = composed
		return nil
	}
	return ErrNotImplemented
}

// ApplyServer handles a remote operation delivered by the transport.
func (c *Client) ApplyServer(op *wrapped.Operation) error {
	if op.Op.BaseLength() != c.expectedBaseLength() {
		return ErrRevisionDesync
	}

	switch c.state {
	case Synchronized:
		if c.editor == nil {
			return ErrNotImplemented
		}
		if err := c.editor.ApplyOperation(op.Op); err != nil {
			return err
		}
		c.docLength = op.Op.TargetLength()
		c.revision++
		return nil

	case AwaitingConfirm:
		oPrime, opPrime, err := wrapped.Transform(c.outstanding, op)
		if err != nil {
			return err
		}
		if c.editor == nil {
			return ErrNotImplemented
		}
		if err := c.editor.ApplyOperation(opPrime.Op); err != nil {
			return err
		}
		c.outstanding = oPrime
		c.revision++
		return nil

	case AwaitingWithBuffer:
		oPrime, t1, err := wrapped.Transform(c.outstanding, op)
		if err != nil {
			return err
		}
		bPrime, opPrime, err := wrapped.Transform(c.buffer, t1)
		if err != nil {
			return err
		}
		if c.editor == nil {
			return ErrNotImplemented
		}
		if err := c.editor.ApplyOperation(opPrime.Op); err != nil {
			return err
		}
		c.outstanding = oPrime
		c.buffer = bPrime
		c.revision++
		return nil
	}
	return ErrNotImplemented
}

// ServerAck handles the server's acknowledgement of this client's
// outstanding operation.
func (c *Client) ServerAck() error {
	switch c.state {
	case Synchronized:
		return ErrNoPendingAck

	case AwaitingConfirm:
		c.docLength = c.outstanding.Op.TargetLength()
		c.outstanding = nil
		c.state = Synchronized
		c.revision++
		return nil

	case AwaitingWithBuffer:
		if c.transport == nil {
			return ErrNotImplemented
		}
		c.revision++
		if err := c.transport.SendOperation(c.revision, c.buffer); err != nil {
			return err
		}
		c.outstanding = c.buffer
		c.buffer = nil
		c.state = AwaitingConfirm
		return nil
	}
	return ErrNotImplemented
}
