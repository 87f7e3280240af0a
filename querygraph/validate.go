package querygraph

import (
	"fmt"

	"github.com/motifquery/motifgraph/registry"
)

// Validate checks g against reg: every pattern-edge type literal, every
// predicate/projection/aggregation variable and property-key literal must
// resolve. A predicate/projection/aggregation with IsEdge set resolves its
// Variable against the pattern's edge-variable names instead of its vertex
// variables. It returns the pattern edges with their types interned, ready
// for the planner.
//
// A nil EdgeType resolves to registry.AnyTypeID without consulting reg, per
// the "any type" contract; a nil ProjectionItem.Property (projecting the ID
// itself) is not looked up at all.
func Validate(g *QueryGraph, reg *registry.TypeRegistry) ([]ResolvedPatternEdge, error) {
	known := make(map[string]bool, len(g.variables))
	for _, v := range g.variables {
		known[v] = true
	}

	resolved := make([]ResolvedPatternEdge, len(g.query.Edges))
	for i, e := range g.query.Edges {
		typeID, err := reg.LookupType(e.EdgeType)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEdgeType, *e.EdgeType)
		}
		resolved[i] = ResolvedPatternEdge{From: e.From, To: e.To, EdgeType: typeID, Direction: e.Direction, EdgeVariable: e.EdgeVariable}
	}

	checkVariable := func(name string, isEdge bool) error {
		if isEdge {
			if _, ok := g.EdgeVariableIndex(name); !ok {
				return fmt.Errorf("%w: %q", ErrUnknownEdgeVariable, name)
			}
			return nil
		}
		if !known[name] {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		return nil
	}

	for _, p := range g.query.Predicates {
		if err := checkVariable(p.Variable, p.IsEdge); err != nil {
			return nil, err
		}
		if _, err := reg.LookupKey(&p.Key); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyKey, p.Key)
		}
	}

	for _, item := range g.query.Projection {
		if err := checkVariable(item.Variable, item.IsEdge); err != nil {
			return nil, err
		}
		if item.Property != nil {
			if _, err := reg.LookupKey(item.Property); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyKey, *item.Property)
			}
		}
	}

	for _, agg := range g.query.Aggregations {
		if agg.Func != AggCount {
			if err := checkVariable(agg.Variable, agg.IsEdge); err != nil {
				return nil, err
			}
		}
		if agg.Func == AggCount && agg.Property != nil {
			return nil, fmt.Errorf("%w: COUNT does not accept a property", ErrInvalidAggregation)
		}
		if agg.Func != AggCount && agg.Property == nil {
			return nil, fmt.Errorf("%w: %s requires a property", ErrInvalidAggregation, agg.Func)
		}
		if agg.Property != nil {
			if _, err := reg.LookupKey(agg.Property); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyKey, *agg.Property)
			}
		}
	}

	return resolved, nil
}
