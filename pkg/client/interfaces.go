package client

import (
	"github.com/otcore/collabtext/pkg/ot"
	"github.com/otcore/collabtext/pkg/wrapped"
)

// Editor is the editor-side adapter consumed by Client: applying a remote
// operation to whatever document representation the editor actually holds.
type Editor interface {
	ApplyOperation(op *ot.Operation) error
}

// Transport is the network-side adapter consumed by Client: submitting an
// outstanding operation to the server.
type Transport interface {
	SendOperation(revision int, op *wrapped.Operation) error
}
