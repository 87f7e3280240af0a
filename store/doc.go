// Package store implements GraphStore, a versioned adjacency-list structure
// over a mutable, labeled, directed multigraph.
//
// GraphStore simultaneously exposes four logical views without
// materializing copies:
//
//	PERMANENT  — edges committed before the current in-flight delta.
//	DIFF_PLUS  — edges staged for addition but not yet merged.
//	DIFF_MINUS — edges staged for deletion but still logically present
//	             in PERMANENT.
//	MERGED     — (PERMANENT ∪ DIFF_PLUS) \ DIFF_MINUS.
//
// Representation: every edge lives once in a central catalog keyed by
// EdgeID, tagged committed/markedDeleted. Each (vertex, direction) pair
// additionally holds one ascending-sorted slice of lightweight
// (neighbor, edgeID) entries — sorted regardless of staging state, so a
// version filter is just a predicate applied while walking the slice
// in order ("a sorted array of tagged entries"), chosen for its
// single-representation simplicity; mutation never needs to keep two
// mirrored tag values in sync because the tag lives once, in the catalog,
// not in the per-vertex slices.
//
// Concurrency: a single sync.RWMutex serializes every read and write.
// Mutations (AddEdge/DeleteEdge/Commit) take the write lock; reads
// (Adjacency/AllEdges/ResolveEdgeID/GetEdge) take the read lock, so no
// query observes a half-applied commit and no commit races an in-flight
// intersection. This collapses the split vertex/edge lock discipline some
// adjacency-list graphs use into one lock, since GraphStore's vertex and
// edge catalogs are never consistent independently of one another
// (adjacency entries reference edges directly).
package store
