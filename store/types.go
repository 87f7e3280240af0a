package store

import (
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/registry"
)

// VertexID is a dense, non-negative integer identifying a vertex. Vertex
// IDs never shrink: deleting edges never reclaims IDs.
type VertexID int32

// EdgeID uniquely identifies an edge and is stable until the edge is
// deleted. IDs are assigned monotonically on insertion.
type EdgeID int64

// Direction selects which adjacency index (outgoing or incoming) an
// IntersectionRule reads from.
type Direction uint8

const (
	// Forward reads Adj(v, FORWARD, ...): vertices v points to.
	Forward Direction = iota
	// Backward reads Adj(v, BACKWARD, ...): vertices that point to v.
	Backward
)

// GraphVersion selects which logical view of the graph an adjacency read
// or edge enumeration observes.
type GraphVersion uint8

const (
	// Permanent selects edges committed before the current in-flight delta.
	Permanent GraphVersion = iota
	// DiffPlus selects edges staged for addition, not yet merged.
	DiffPlus
	// DiffMinus selects edges staged for deletion, still logically present
	// in Permanent.
	DiffMinus
	// Merged selects (Permanent ∪ DiffPlus) \ DiffMinus.
	Merged
)

// edgeRecord is the single source of truth for one edge's staging state.
// Per-vertex adjacency entries reference it by EdgeID rather than carrying
// their own copy of committed/markedDeleted, so commit() and deleteEdge()
// never need to keep two mirrored flags in sync.
type edgeRecord struct {
	id   EdgeID
	src  VertexID
	dst  VertexID
	typ  registry.ID
	// committed is true once the edge has survived a Commit() (i.e. it is
	// part of PERMANENT); false means it is a DIFF_PLUS staged addition.
	committed bool
	// markedDeleted is true once a committed edge has been staged for
	// deletion (i.e. it is part of DIFF_MINUS). Never true for an
	// uncommitted edge — deleting a staged addition cancels it outright.
	markedDeleted bool
}

// edgeKey identifies an edge by its logical triple, used to enforce that
// DIFF_PLUS/DIFF_MINUS are keyed by (source, destination, type) and that
// adjacency is duplicate-free per (vertex, direction, version).
type edgeKey struct {
	src VertexID
	dst VertexID
	typ registry.ID
}

// adjEntry is one slot in a per-(vertex,direction) adjacency slice: the
// neighbor reached, and the EdgeID whose catalog record carries the
// type/staging state. Slices are kept ascending by neighbor (ties broken by
// edgeID) regardless of the referenced edge's staging state.
type adjEntry struct {
	neighbor VertexID
	edge     EdgeID
}

// vertexMeta holds the optional type and properties attached to a vertex.
type vertexMeta struct {
	typ        registry.ID
	hasType    bool
	properties map[registry.ID]propval.PropertyValue
}

// EdgeRef is a read-only snapshot of one edge, returned by GetEdge and
// AllEdges. Callers must not assume it stays valid past the next mutation.
type EdgeRef struct {
	ID   EdgeID
	Src  VertexID
	Dst  VertexID
	Type registry.ID
}
