package client

import "errors"

// Errors returned by Client. Callers should compare with errors.Is.
var (
	// ErrNoPendingAck is returned by ServerAck when the client is
	// Synchronized: there is no outstanding operation to acknowledge,
	// which indicates the server and client have desynchronized.
	ErrNoPendingAck = errors.New("client: server acked but no operation is outstanding")

	// ErrRevisionDesync is returned by ApplyServer when the incoming
	// operation's base length does not match the length of the document
	// the client believes the server holds.
	ErrRevisionDesync = errors.New("client: incoming operation's base length does not match expected document length")

	// ErrNotImplemented is returned the first time a Client constructed
	// without a Transport or Editor would need to call one.
	ErrNotImplemented = errors.New("client: no transport/editor adapter configured")
)
