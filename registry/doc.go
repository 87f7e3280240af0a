// Package registry interns edge-type and property-key names into small,
// dense, non-negative integers so the rest of the core never carries raw
// strings on its hot paths (adjacency filtering, predicate evaluation).
//
// A TypeRegistry is injected into the components that need it
// (querygraph.Validate, the join resolvers, the motifdb facade) rather than
// held as package-level global state, so
// tests can use isolated registries and exercise the "unknown type" error
// path deterministically.
//
// Two independent namespaces share one TypeRegistry: Kind Type for edge
// (and vertex) type names, Kind Key for property-key names. A name interned
// under one Kind is invisible under the other, so "Type 3" and "Key 3" never
// collide.
//
// AnyTypeID is a distinguished sentinel (not produced by InternType) that
// means "any type" during adjacency filtering; LookupType returns it when
// asked to look up a nil name.
package registry
