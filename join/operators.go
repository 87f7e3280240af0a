package join

import (
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/store"
)

// ResolvedPredicate binds one PropertyPredicate to a position within a
// plan.Plan's Order (or, if IsEdge, a position within a resolved edge-ID
// slice aligned to querygraph.ResolvedPatternEdge) and an interned property
// key, so Filter never repeats a registry lookup per row.
type ResolvedPredicate struct {
	IsEdge    bool
	VarIndex  int // valid when !IsEdge
	EdgeIndex int // valid when IsEdge
	Key       registry.ID
	Op        querygraph.Op
	Value     propval.PropertyValue
}

// ResolvePredicates binds preds against order and edgeVars (a pattern's
// edge-variable name to pattern-edge index map, as returned by
// querygraph.QueryGraph.EdgeVariables), interning each predicate's property
// key against reg. Returns ErrUnresolvedVariable if a predicate names a
// variable absent from order or edgeVars, whichever its IsEdge flag selects.
func ResolvePredicates(order []string, edgeVars map[string]int, reg *registry.TypeRegistry, preds []querygraph.PropertyPredicate) ([]ResolvedPredicate, error) {
	index := indexOf(order)

	out := make([]ResolvedPredicate, 0, len(preds))
	for _, p := range preds {
		key, err := reg.LookupKey(&p.Key)
		if err != nil {
			return nil, err
		}
		if p.IsEdge {
			edgeIdx, ok := edgeVars[p.Variable]
			if !ok {
				return nil, ErrUnresolvedVariable
			}
			out = append(out, ResolvedPredicate{IsEdge: true, EdgeIndex: edgeIdx, Key: key, Op: p.Op, Value: p.Value})
			continue
		}
		varIdx, ok := index[p.Variable]
		if !ok {
			return nil, ErrUnresolvedVariable
		}
		out = append(out, ResolvedPredicate{VarIndex: varIdx, Key: key, Op: p.Op, Value: p.Value})
	}

	return out, nil
}

// Filter reports whether prefix satisfies every predicate (a conjunction),
// reading each predicate's property straight from the store: vertex
// properties via VertexProperty, edge properties via EdgeProperty keyed by
// edgeIDs[p.EdgeIndex] (edgeIDs may be nil if no predicate is edge-qualified).
// A prefix missing a predicate's property never satisfies it — there is no
// three-valued/NULL logic in this module.
func Filter(prefix Prefix, edgeIDs []store.EdgeID, st *store.GraphStore, preds []ResolvedPredicate) (bool, error) {
	for _, p := range preds {
		var v propval.PropertyValue
		var ok bool
		if p.IsEdge {
			v, ok = st.EdgeProperty(edgeIDs[p.EdgeIndex], p.Key)
		} else {
			v, ok = st.VertexProperty(prefix[p.VarIndex], p.Key)
		}
		if !ok {
			return false, nil
		}
		ok, err := evalOp(v, p.Op, p.Value)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func evalOp(lhs propval.PropertyValue, op querygraph.Op, rhs propval.PropertyValue) (bool, error) {
	switch op {
	case querygraph.OpEq:
		return lhs.Equal(rhs), nil
	case querygraph.OpNeq:
		return !lhs.Equal(rhs), nil
	case querygraph.OpLt:
		return lhs.Less(rhs)
	case querygraph.OpGt:
		return rhs.Less(lhs)
	case querygraph.OpLte:
		gt, err := rhs.Less(lhs)
		if err != nil {
			return false, err
		}
		return !gt, nil
	case querygraph.OpGte:
		lt, err := lhs.Less(rhs)
		if err != nil {
			return false, err
		}
		return !lt, nil
	default:
		return false, ErrUnresolvedVariable
	}
}

// ResolvedProjectionItem binds one ProjectionItem to a position within a
// plan.Plan's Order (or, if IsEdge, a position within a resolved edge-ID
// slice) and, if it projects a property rather than the bare vertex/edge
// ID, an interned property key.
type ResolvedProjectionItem struct {
	IsEdge      bool
	VarIndex    int // valid when !IsEdge
	EdgeIndex   int // valid when IsEdge
	Key         registry.ID
	HasProperty bool
}

// ResolveProjection binds items against order and edgeVars (see
// ResolvePredicates), interning each projected property's key against reg.
func ResolveProjection(order []string, edgeVars map[string]int, reg *registry.TypeRegistry, items []querygraph.ProjectionItem) ([]ResolvedProjectionItem, error) {
	index := indexOf(order)

	out := make([]ResolvedProjectionItem, 0, len(items))
	for _, item := range items {
		var resolved ResolvedProjectionItem
		if item.IsEdge {
			edgeIdx, ok := edgeVars[item.Variable]
			if !ok {
				return nil, ErrUnresolvedVariable
			}
			resolved.IsEdge = true
			resolved.EdgeIndex = edgeIdx
		} else {
			varIdx, ok := index[item.Variable]
			if !ok {
				return nil, ErrUnresolvedVariable
			}
			resolved.VarIndex = varIdx
		}
		if item.Property != nil {
			key, err := reg.LookupKey(item.Property)
			if err != nil {
				return nil, err
			}
			resolved.Key = key
			resolved.HasProperty = true
		}
		out = append(out, resolved)
	}

	return out, nil
}

// Project evaluates items against prefix (and edgeIDs, for edge-qualified
// items — may be nil if no item is edge-qualified), returning the
// projected row and true, or (nil, false) if any item requests a property
// absent from the vertex/edge it names — the skip-if-absent rule
// GroupByAndAggregate also relies on, applied uniformly whether or not the
// query aggregates.
func Project(prefix Prefix, edgeIDs []store.EdgeID, st *store.GraphStore, items []ResolvedProjectionItem) ([]propval.PropertyValue, bool) {
	out := make([]propval.PropertyValue, len(items))
	for i, item := range items {
		if item.IsEdge {
			if !item.HasProperty {
				out[i] = propval.NewInt(int32(edgeIDs[item.EdgeIndex]))
				continue
			}
			v, ok := st.EdgeProperty(edgeIDs[item.EdgeIndex], item.Key)
			if !ok {
				return nil, false
			}
			out[i] = v
			continue
		}
		if !item.HasProperty {
			out[i] = propval.NewInt(int32(prefix[item.VarIndex]))
			continue
		}
		v, ok := st.VertexProperty(prefix[item.VarIndex], item.Key)
		if !ok {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// ResolveEdgeIDs resolves every pattern edge in edges to the store.EdgeID
// bound by prefix under version, for queries that report edges alongside
// vertices. Returns ErrUnresolvedVariable if an edge names a variable
// absent from order.
func ResolveEdgeIDs(st *store.GraphStore, order []string, prefix Prefix, edges []querygraph.ResolvedPatternEdge, version store.GraphVersion) ([]store.EdgeID, error) {
	index := indexOf(order)

	out := make([]store.EdgeID, len(edges))
	for i, e := range edges {
		fromIdx, ok := index[e.From]
		if !ok {
			return nil, ErrUnresolvedVariable
		}
		toIdx, ok := index[e.To]
		if !ok {
			return nil, ErrUnresolvedVariable
		}
		src, dst := prefix[fromIdx], prefix[toIdx]
		if e.Direction == store.Backward {
			src, dst = dst, src
		}
		id, err := st.ResolveEdgeID(src, dst, e.EdgeType, version)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return out, nil
}

func indexOf(order []string) map[string]int {
	m := make(map[string]int, len(order))
	for i, name := range order {
		m[name] = i
	}
	return m
}
