package store

import (
	"sort"

	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/sortedids"
)

// insertAdjEntry inserts (neighbor, edge) into list, kept ascending by
// neighbor and, for entries sharing a neighbor, by EdgeID — a stable
// tie-break that keeps iteration order deterministic when several parallel
// edges of different types connect the same pair of vertices.
//
// Complexity: O(log n) to locate, O(n) to shift.
func insertAdjEntry(list []adjEntry, neighbor VertexID, edge EdgeID) []adjEntry {
	i := sort.Search(len(list), func(i int) bool {
		if list[i].neighbor != neighbor {
			return list[i].neighbor > neighbor
		}
		return list[i].edge >= edge
	})
	list = append(list, adjEntry{})
	copy(list[i+1:], list[i:])
	list[i] = adjEntry{neighbor: neighbor, edge: edge}

	return list
}

// removeAdjEntry deletes the exact (neighbor, edge) pair from list, used
// when a staged addition is cancelled by a matching delete before commit.
// A missing entry is a no-op: callers only invoke this when they already
// know the entry exists.
//
// Complexity: O(log n) to locate, O(n) to shift.
func removeAdjEntry(list []adjEntry, neighbor VertexID, edge EdgeID) []adjEntry {
	i := sort.Search(len(list), func(i int) bool {
		if list[i].neighbor != neighbor {
			return list[i].neighbor > neighbor
		}
		return list[i].edge >= edge
	})
	if i >= len(list) || list[i].neighbor != neighbor || list[i].edge != edge {
		return list
	}

	return append(list[:i], list[i+1:]...)
}

// includedInVersion reports whether rec belongs to the requested logical
// view (PERMANENT, DIFF_PLUS, DIFF_MINUS, or MERGED).
func includedInVersion(rec *edgeRecord, version GraphVersion) bool {
	switch version {
	case Permanent:
		return rec.committed && !rec.markedDeleted
	case DiffPlus:
		return !rec.committed
	case DiffMinus:
		return rec.committed && rec.markedDeleted
	case Merged:
		return !(rec.committed && rec.markedDeleted)
	default:
		return false
	}
}

// Adjacency returns the sorted, duplicate-free neighbor IDs of vertex in
// direction, as seen under version, filtered to typeFilter (a concrete
// registry.ID, or registry.AnyTypeID for "any type"). A never-mentioned
// vertex yields an empty list, never an error.
//
// Complexity: O(d) where d is the raw (pre-filter) degree of vertex in
// direction.
func (s *GraphStore) Adjacency(vertex VertexID, dir Direction, version GraphVersion, typeFilter registry.ID) *sortedids.SortedIdList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []adjEntry
	if dir == Forward {
		list = s.forward[vertex]
	} else {
		list = s.backward[vertex]
	}

	out := make([]int32, 0, len(list))
	haveLast := false
	var last VertexID
	for _, entry := range list {
		rec := s.edges[entry.edge]
		if rec == nil {
			continue // defensive: should never happen, catalog is authoritative
		}
		if typeFilter != registry.AnyTypeID && rec.typ != typeFilter {
			continue
		}
		if !includedInVersion(rec, version) {
			continue
		}
		if haveLast && entry.neighbor == last {
			continue // dedup: another edge (different type) to the same neighbor
		}
		out = append(out, int32(entry.neighbor))
		last = entry.neighbor
		haveLast = true
	}

	return sortedids.FromSortedUnique(out)
}

// AllEdges returns every edge visible under version, optionally restricted
// to typeFilter, as EdgeRef snapshots. Used by the generic-join executor to
// seed stage 0 with initial length-2 prefixes.
//
// Complexity: O(E).
func (s *GraphStore) AllEdges(version GraphVersion, typeFilter registry.ID) []EdgeRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EdgeRef, 0, len(s.edges))
	for id, rec := range s.edges {
		if typeFilter != registry.AnyTypeID && rec.typ != typeFilter {
			continue
		}
		if !includedInVersion(rec, version) {
			continue
		}
		out = append(out, EdgeRef{ID: id, Src: rec.src, Dst: rec.dst, Type: rec.typ})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		if out[i].Dst != out[j].Dst {
			return out[i].Dst < out[j].Dst
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ResolveEdgeID finds the EdgeID of the edge (src,dst) visible under
// version, restricted to typ (or the smallest-ID match across all types if
// typ is registry.AnyTypeID). Returns ErrEdgeNotFound if no such edge is
// visible under version.
//
// Complexity: O(1) for a concrete typ; O(d) for AnyTypeID, where d is the
// out-degree of src.
func (s *GraphStore) ResolveEdgeID(src, dst VertexID, typ registry.ID, version GraphVersion) (EdgeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if typ != registry.AnyTypeID {
		id, ok := s.edgeByKey[edgeKey{src: src, dst: dst, typ: typ}]
		if !ok {
			return 0, ErrEdgeNotFound
		}
		if !includedInVersion(s.edges[id], version) {
			return 0, ErrEdgeNotFound
		}

		return id, nil
	}

	best := EdgeID(-1)
	for _, entry := range s.forward[src] {
		if entry.neighbor != dst {
			continue
		}
		rec := s.edges[entry.edge]
		if rec == nil || !includedInVersion(rec, version) {
			continue
		}
		if best == -1 || entry.edge < best {
			best = entry.edge
		}
	}
	if best == -1 {
		return 0, ErrEdgeNotFound
	}

	return best, nil
}

// CheckInvariant verifies, for every vertex v appearing in either adjacency
// index, that v ∈ Adj(u, FORWARD, version) iff u ∈ Adj(v, BACKWARD, version)
// for every version. Intended for tests and assertions, not the hot path.
//
// Complexity: O(V + E).
func (s *GraphStore) CheckInvariant() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, versions := range []GraphVersion{Permanent, DiffPlus, DiffMinus, Merged} {
		for v, list := range s.forward {
			for _, entry := range list {
				rec := s.edges[entry.edge]
				if rec == nil || !includedInVersion(rec, versions) {
					continue
				}
				if !hasMirror(s.backward[entry.neighbor], v, entry.edge) {
					return ErrMutationInconsistency
				}
			}
		}
		for v, list := range s.backward {
			for _, entry := range list {
				rec := s.edges[entry.edge]
				if rec == nil || !includedInVersion(rec, versions) {
					continue
				}
				if !hasMirror(s.forward[entry.neighbor], v, entry.edge) {
					return ErrMutationInconsistency
				}
			}
		}
	}

	return nil
}

func hasMirror(list []adjEntry, neighbor VertexID, edge EdgeID) bool {
	for _, e := range list {
		if e.neighbor == neighbor && e.edge == edge {
			return true
		}
	}
	return false
}
