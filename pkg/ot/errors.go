package ot

import "errors"

// Errors returned by the operation algebra. Callers should compare with
// errors.Is rather than matching on message text.
var (
	// ErrBaseLengthMismatch is returned by Apply when the input string's
	// rune length does not equal the operation's BaseLength.
	ErrBaseLengthMismatch = errors.New("ot: base length does not match input string")

	// ErrRetainOverflow is returned by Apply when a retain action would
	// read past the end of the input string.
	ErrRetainOverflow = errors.New("ot: retain runs past end of input string")

	// ErrIncompleteApply is returned by Apply when the operation does not
	// consume the entire input string.
	ErrIncompleteApply = errors.New("ot: operation did not consume the whole input string")

	// ErrComposeLengthMismatch is returned by Compose when A's target
	// length does not equal B's base length.
	ErrComposeLengthMismatch = errors.New("ot: compose: A.targetLength != B.baseLength")

	// ErrComposeStructural is returned by Compose when one action
	// sequence runs out before the other during the merge-walk.
	ErrComposeStructural = errors.New("ot: compose: operations are not composable")

	// ErrTransformLengthMismatch is returned by Transform when A and B do
	// not share the same base length.
	ErrTransformLengthMismatch = errors.New("ot: transform: A.baseLength != B.baseLength")

	// ErrTransformIncompatible is returned by Transform when the
	// merge-walk reaches an action-kind pairing that cannot occur for
	// well-formed operations. Defensive only; unreachable through the
	// public builder API.
	ErrTransformIncompatible = errors.New("ot: transform: operations are not compatible")

	// ErrDeserializationMismatch is returned when a decoded operation's
	// ops do not produce the declared baseLength/targetLength. A missing
	// baseLength or targetLength field decodes as 0, so its absence is
	// reported only when the ops produce a nonzero length for it.
	ErrDeserializationMismatch = errors.New("ot: deserialization: baseLength/targetLength mismatch")

	// ErrUnknownAction is returned when a decoded action record has zero
	// or more than one of the retain/insert/delete keys set.
	ErrUnknownAction = errors.New("ot: deserialization: unknown action")
)
