package motifdb

import (
	"github.com/motifquery/motifgraph/join"
	"github.com/motifquery/motifgraph/plan"
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// Query runs q as a one-time MATCH and then applies its WHERE predicates,
// RETURN projection, and (if present) aggregations, writing the final rows
// to sk tagged sink.Matched — the full operator pipeline (Scan, Extend,
// Filter, Projection, GroupByAndAggregate) sitting on top of the raw
// GenericJoinExecutor Match exposes directly.
//
// A row missing a projected or aggregated property is dropped entirely
// (the skip-if-absent rule, applied uniformly whether or not q aggregates).
func (db *Database) Query(q *querygraph.StructuredQuery, sk sink.Sink) error {
	g, resolvedEdges, err := db.buildAndValidate(q)
	if err != nil {
		return err
	}
	p, err := plan.OneTimeMatch(g, resolvedEdges)
	if err != nil {
		return err
	}

	edgeVars := g.EdgeVariables()

	preds, err := join.ResolvePredicates(p.Order, edgeVars, db.reg, q.Predicates)
	if err != nil {
		return err
	}

	items, aggCols, err := db.resolveReturnClause(p.Order, edgeVars, q)
	if err != nil {
		return err
	}

	needEdgeIDs := anyEdgeQualified(preds, items)

	raw := sink.NewMemorySink()
	if err := join.NewExecutor(db.store, db.jopts...).Execute(p, raw); err != nil {
		return err
	}

	var rows [][]propval.PropertyValue
	for _, t := range raw.Tuples() {
		prefix, err := prefixFromColumns(t.Columns)
		if err != nil {
			return err
		}

		var edgeIDs []store.EdgeID
		if needEdgeIDs {
			edgeIDs, err = join.ResolveEdgeIDs(db.store, p.Order, prefix, resolvedEdges, store.Permanent)
			if err != nil {
				return err
			}
		}

		ok, err := join.Filter(prefix, edgeIDs, db.store, preds)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		row, ok := join.Project(prefix, edgeIDs, db.store, items)
		if !ok {
			continue // skip-if-absent
		}
		rows = append(rows, row)
	}

	if len(q.Aggregations) == 0 {
		for _, row := range rows {
			if err := sk.Append(sink.Tuple{Tag: sink.Matched, Columns: row}); err != nil {
				return err
			}
		}

		return nil
	}

	out, err := join.GroupByAndAggregate(rows, len(q.Projection), aggCols)
	if err != nil {
		return err
	}
	for _, t := range out {
		if err := sk.Append(t); err != nil {
			return err
		}
	}

	return nil
}

// resolveReturnClause binds q's projection and aggregation targets against
// order. It returns the combined projection-item list Project should
// evaluate per row — q.Projection's group-by columns followed by one item
// per non-COUNT(*) aggregation target — and the AggregationColumn list
// GroupByAndAggregate should fold over, indexed into that combined row.
func (db *Database) resolveReturnClause(order []string, edgeVars map[string]int, q *querygraph.StructuredQuery) ([]join.ResolvedProjectionItem, []join.AggregationColumn, error) {
	items, err := join.ResolveProjection(order, edgeVars, db.reg, q.Projection)
	if err != nil {
		return nil, nil, err
	}

	aggCols := make([]join.AggregationColumn, len(q.Aggregations))
	for i, a := range q.Aggregations {
		if a.Property == nil {
			if a.Func != querygraph.AggCount {
				return nil, nil, ErrNoAggregationTarget
			}
			aggCols[i] = join.AggregationColumn{Func: a.Func, ColumnIndex: -1}
			continue
		}

		target, err := join.ResolveProjection(order, edgeVars, db.reg, []querygraph.ProjectionItem{
			{Variable: a.Variable, IsEdge: a.IsEdge, Property: a.Property},
		})
		if err != nil {
			return nil, nil, err
		}
		items = append(items, target[0])
		aggCols[i] = join.AggregationColumn{Func: a.Func, ColumnIndex: len(items) - 1}
	}

	return items, aggCols, nil
}

// anyEdgeQualified reports whether any predicate or projection item binds
// against an edge variable, in which case Query must resolve each row's
// edge IDs before evaluating them.
func anyEdgeQualified(preds []join.ResolvedPredicate, items []join.ResolvedProjectionItem) bool {
	for _, p := range preds {
		if p.IsEdge {
			return true
		}
	}
	for _, item := range items {
		if item.IsEdge {
			return true
		}
	}

	return false
}

// prefixFromColumns reconstructs the join.Prefix a raw MATCHED tuple
// encodes — each column is the vertex ID bound to one plan.Plan.Order
// position, per prefixToColumns in the join package.
func prefixFromColumns(cols []propval.PropertyValue) (join.Prefix, error) {
	out := make(join.Prefix, len(cols))
	for i, c := range cols {
		v, err := c.IntValue()
		if err != nil {
			return nil, err
		}
		out[i] = store.VertexID(v)
	}

	return out, nil
}
