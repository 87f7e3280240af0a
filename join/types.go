package join

import "github.com/motifquery/motifgraph/store"

// Prefix is a partial match: Prefix[i] is the vertex bound to Order[i] in
// the plan.Plan currently being executed. For a self-loop-only pattern
// (Order of length 1) the prefix is [v, v]: both entries are the vertex
// bound to Order[0].
type Prefix []store.VertexID

// extended returns a fresh copy of p with x appended, leaving p untouched —
// required because p may still be referenced by sibling extensions in the
// same batch.
func (p Prefix) extended(x store.VertexID) Prefix {
	out := make(Prefix, len(p)+1)
	copy(out, p)
	out[len(p)] = x

	return out
}

// Stats reports instrumentation about one Execute/ExecuteDelta call, used
// to verify the min-count rule's cost bound: intersection cost tracks
// O(smallest operand), not O(product).
type Stats struct {
	// IntersectionElementsScanned sums, over every intersection performed,
	// the length of its smallest operand — the dominant term in a
	// min-count-ordered multiway intersection's cost.
	IntersectionElementsScanned int64
	// TuplesEmitted counts completed tuples handed to the sink.
	TuplesEmitted int64
}
