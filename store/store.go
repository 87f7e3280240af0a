package store

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/registry"
)

// GraphStore is the versioned, in-memory adjacency-list structure described
// in the package doc comment. The zero value is not usable; construct with
// NewGraphStore.
type GraphStore struct {
	mu sync.RWMutex // serializes every read and write; see doc.go.

	id uuid.UUID // process-unique identifier, surfaced to sinks/loggers.

	nextEdgeID int64 // monotonic counter; EdgeID(0) is never issued.

	vertices map[VertexID]*vertexMeta
	maxVertexSeen VertexID
	anyVertexSeen bool

	edges    map[EdgeID]*edgeRecord
	edgeByKey map[edgeKey]EdgeID // (src,dst,type) -> current EdgeID, O(1) staging lookups

	forward  map[VertexID][]adjEntry
	backward map[VertexID][]adjEntry

	edgeProperties map[EdgeID]map[registry.ID]propval.PropertyValue

	logger *log.Logger
}

// NewGraphStore returns an empty GraphStore: no vertices, no edges, both
// diffs empty.
//
// Complexity: O(1).
func NewGraphStore(opts ...Option) *GraphStore {
	s := &GraphStore{
		id:             uuid.New(),
		vertices:       make(map[VertexID]*vertexMeta),
		edges:          make(map[EdgeID]*edgeRecord),
		edgeByKey:      make(map[edgeKey]EdgeID),
		forward:        make(map[VertexID][]adjEntry),
		backward:       make(map[VertexID][]adjEntry),
		edgeProperties: make(map[EdgeID]map[registry.ID]propval.PropertyValue),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StoreID returns the process-unique identifier assigned at construction,
// used to correlate log lines and to stamp file-sink output headers.
func (s *GraphStore) StoreID() uuid.UUID {
	return s.id
}
