// Package querygraph holds the in-memory representation of a parsed query
// pattern: the StructuredQuery produced by an external parser and the
// undirected QueryGraph view of it that the planner consults.
//
// StructuredQuery is agnostic to concrete syntax; it is the contract
// boundary between a parser (out of scope for this module) and the planner
// in package plan. A StructuredQuery is created once per query and lives
// for the duration of a single planning call; QueryGraph derives entirely
// from it and is likewise throwaway.
//
// Vertex and edge type constraints are optional throughout: a nil type
// pointer means "any type", resolved against a registry.TypeRegistry via
// Validate before planning.
package querygraph
