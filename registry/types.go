package registry

// ID is a small, dense, non-negative integer assigned by TypeRegistry.
type ID int32

// AnyTypeID is the distinguished sentinel meaning "any type" (or "any
// property key", in the Key namespace). It is never produced by
// InternType/InternKey and is only ever returned by LookupType/LookupKey
// when asked to resolve a nil name.
const AnyTypeID ID = -1

// Kind distinguishes the two interning namespaces a TypeRegistry manages.
type Kind uint8

const (
	// KindType interns edge-type (and vertex-type) names.
	KindType Kind = iota
	// KindKey interns property-key names.
	KindKey
)
