// Package wrapped attaches opaque per-operation metadata to an ot.Operation
// while preserving every algebraic law the core guarantees: apply, invert,
// compose, and transform all still hold, with metadata carried or merged
// alongside the underlying operation.
package wrapped

import "github.com/otcore/collabtext/pkg/ot"

// Meta is an opaque mapping from metadata names to scalar values. Known
// keys used by external collaborators include "clientId", "cursor", and
// "selectionEnd", but the core treats every key opaquely.
type Meta map[string]any

// Clone returns a shallow copy of m. A nil receiver clones to an empty,
// non-nil map.
func (m Meta) Clone() Meta {
	out := make(Meta, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// merge returns a's keys overlaid by b's keys, b winning on conflict
// (right-biased).
func merge(a, b Meta) Meta {
	out := a.Clone()
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Operation pairs an ot.Operation with its metadata envelope.
type Operation struct {
	Op   *ot.Operation
	Meta Meta
}

// New wraps op with meta. A nil meta is treated as empty.
func New(op *ot.Operation, meta Meta) *Operation {
	return &Operation{Op: op, Meta: meta}
}

// Apply delegates to the wrapped operation.
func (w *Operation) Apply(str string) (string, error) {
	return w.Op.Apply(str)
}

// Invert returns the inverse wrapped operation, carrying the same metadata.
func (w *Operation) Invert(str string) *Operation {
	return New(w.Op.Invert(str), w.Meta.Clone())
}

// Compose composes the wrapped operations' underlying Operations and
// merges their metadata with b's keys taking precedence over a's
// (right-biased, reflecting that b is the more recent edit).
func Compose(a, b *Operation) (*Operation, error) {
	composed, err := ot.Compose(a.Op, b.Op)
	if err != nil {
		return nil, err
	}
	return New(composed, merge(a.Meta, b.Meta)), nil
}

// Transform transforms the wrapped operations' underlying Operations. No
// metadata merging occurs: a' keeps a's metadata, b' keeps b's — each side
// of a transform remains that author's edit, with its own authorship info.
func Transform(a, b *Operation) (*Operation, *Operation, error) {
	aPrimeOp, bPrimeOp, err := ot.Transform(a.Op, b.Op)
	if err != nil {
		return nil, nil, err
	}
	return New(aPrimeOp, a.Meta.Clone()), New(bPrimeOp, b.Meta.Clone()), nil
}
