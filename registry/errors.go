package registry

import "errors"

// Sentinel errors returned by TypeRegistry lookups.
var (
	// ErrNoSuchElement indicates LookupType or LookupKey was called with a
	// non-nil name that has never been interned. Raised only for lookups,
	// not for InternType/InternKey, which create the entry on demand
	// instead.
	ErrNoSuchElement = errors.New("registry: no such element")

	// ErrEmptyName indicates InternType/InternKey was called with the empty
	// string, which is never a valid interned name.
	ErrEmptyName = errors.New("registry: name is empty")
)
