package querygraph

import "errors"

// Sentinel errors for structured-query validation. Callers should branch on
// these via errors.Is; they are never wrapped with formatted context at the
// definition site.
var (
	// ErrNoPatternEdges indicates a StructuredQuery with an empty edge list.
	ErrNoPatternEdges = errors.New("querygraph: pattern has no edges")

	// ErrUnknownVariable indicates a projection or predicate references a
	// variable that does not appear in any pattern edge.
	ErrUnknownVariable = errors.New("querygraph: unknown variable")

	// ErrUnknownEdgeType indicates a pattern edge names an edge-type literal
	// absent from the supplied registry.
	ErrUnknownEdgeType = errors.New("querygraph: unknown edge type")

	// ErrUnknownPropertyKey indicates a predicate, projection item, or
	// aggregation names a property key absent from the supplied registry.
	ErrUnknownPropertyKey = errors.New("querygraph: unknown property key")

	// ErrEmptyVariableName indicates a pattern edge names the empty string
	// as a vertex variable.
	ErrEmptyVariableName = errors.New("querygraph: empty variable name")

	// ErrInvalidAggregation indicates an AggregationSpec combines an
	// aggregation function with an argument it cannot accept (e.g. COUNT(*)
	// with a property key set).
	ErrInvalidAggregation = errors.New("querygraph: invalid aggregation")

	// ErrDuplicateEdgeVariable indicates two pattern edges declare the same
	// non-nil EdgeVariable name.
	ErrDuplicateEdgeVariable = errors.New("querygraph: duplicate edge variable")

	// ErrUnknownEdgeVariable indicates a predicate, projection item, or
	// aggregation references an edge variable absent from the pattern.
	ErrUnknownEdgeVariable = errors.New("querygraph: unknown edge variable")
)
