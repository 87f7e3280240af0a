package store

import (
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/registry"
)

// AddEdge stages an addition under DIFF_PLUS and returns its EdgeID.
//
// If (src,dst,typ) is currently staged for deletion (DIFF_MINUS), the
// staged deletion is cancelled and the edge's original EdgeID is returned —
// no new EdgeID is minted. If (src,dst,typ) is
// already present (committed-and-unmarked, or already DIFF_PLUS), AddEdge
// is idempotent and returns the existing EdgeID: adjacency is a set keyed
// by (src,dst,typ), not a bag, so re-adding an identical triple does not
// create a parallel entry.
//
// Complexity: O(log d) amortized, where d is the degree of src/dst.
func (s *GraphStore) AddEdge(src, dst VertexID, typ registry.ID) (EdgeID, error) {
	if src < 0 || dst < 0 {
		return 0, ErrNegativeVertexID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureVertexLocked(src)
	s.ensureVertexLocked(dst)

	key := edgeKey{src: src, dst: dst, typ: typ}
	if existingID, ok := s.edgeByKey[key]; ok {
		rec := s.edges[existingID]
		if rec.committed && rec.markedDeleted {
			rec.markedDeleted = false // cancel the staged deletion
		}
		return existingID, nil // idempotent: same logical edge, same ID
	}

	s.nextEdgeID++
	id := EdgeID(s.nextEdgeID)
	s.edges[id] = &edgeRecord{id: id, src: src, dst: dst, typ: typ}
	s.edgeByKey[key] = id

	s.forward[src] = insertAdjEntry(s.forward[src], dst, id)
	s.backward[dst] = insertAdjEntry(s.backward[dst], src, id)

	return id, nil
}

// DeleteEdge stages (src,dst,typ) for deletion.
//
// If the edge is currently committed (PERMANENT) and not already staged for
// deletion, it is moved into DIFF_MINUS. If the edge is only staged for
// addition (DIFF_PLUS, not yet merged), that staged addition is cancelled
// outright and the adjacency entries are removed. Deleting a non-existent
// edge, or one already in DIFF_MINUS, is a no-op.
//
// Complexity: O(log d) amortized.
func (s *GraphStore) DeleteEdge(src, dst VertexID, typ registry.ID) error {
	if src < 0 || dst < 0 {
		return ErrNegativeVertexID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey{src: src, dst: dst, typ: typ}
	id, ok := s.edgeByKey[key]
	if !ok {
		return nil // no-op: edge does not exist
	}
	rec := s.edges[id]

	if !rec.committed {
		// Cancel the staged addition outright.
		delete(s.edges, id)
		delete(s.edgeByKey, key)
		delete(s.edgeProperties, id)
		s.forward[src] = removeAdjEntry(s.forward[src], dst, id)
		s.backward[dst] = removeAdjEntry(s.backward[dst], src, id)
		return nil
	}

	rec.markedDeleted = true // stage for deletion; no-op if already staged

	return nil
}

// GetEdge returns a read-only snapshot of id, or ErrEdgeNotFound.
//
// Complexity: O(1).
func (s *GraphStore) GetEdge(id EdgeID) (EdgeRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.edges[id]
	if !ok {
		return EdgeRef{}, ErrEdgeNotFound
	}

	return EdgeRef{ID: rec.id, Src: rec.src, Dst: rec.dst, Type: rec.typ}, nil
}

// SetEdgeProperty attaches (or overwrites) a property keyed by key on edge
// id. Returns ErrEdgeNotFound if id does not exist.
//
// Complexity: O(1).
func (s *GraphStore) SetEdgeProperty(id EdgeID, key registry.ID, value propval.PropertyValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.edges[id]; !ok {
		return ErrEdgeNotFound
	}
	props, ok := s.edgeProperties[id]
	if !ok {
		props = make(map[registry.ID]propval.PropertyValue)
		s.edgeProperties[id] = props
	}
	props[key] = value

	return nil
}

// EdgeProperty returns the value of key on edge id, and true, or (zero
// value, false) if absent or id does not exist.
//
// Complexity: O(1).
func (s *GraphStore) EdgeProperty(id EdgeID, key registry.ID) (propval.PropertyValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props, ok := s.edgeProperties[id]
	if !ok {
		return propval.PropertyValue{}, false
	}
	v, ok := props[key]

	return v, ok
}
