package propval

import "errors"

// Sentinel errors returned by the propval codec.
var (
	// ErrUnknownKind indicates a Kind byte that does not correspond to any
	// of INT, DOUBLE, BOOLEAN, STRING was read from an encoded buffer.
	ErrUnknownKind = errors.New("propval: unknown value kind")

	// ErrTruncatedBuffer indicates an encoded buffer ended before the full
	// value (kind tag, or fixed/variable-length payload) could be read.
	ErrTruncatedBuffer = errors.New("propval: truncated buffer")

	// ErrKindMismatch indicates a typed accessor (IntValue, DoubleValue, ...)
	// was called on a PropertyValue of a different Kind.
	ErrKindMismatch = errors.New("propval: kind mismatch")
)
