package querygraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/registry"
)

func strPtr(s string) *string { return &s }

// triangleQuery builds the canonical (a)->(b)->(c)->(a) pattern used
// throughout the planner and executor tests.
func triangleQuery() *querygraph.StructuredQuery {
	return &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "a"},
		},
	}
}

func TestBuild_TriangleDegrees(t *testing.T) {
	t.Parallel()

	g, err := querygraph.Build(triangleQuery())
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, g.Variables())
	require.Equal(t, 2, g.Degree("a"))
	require.Equal(t, 2, g.Degree("b"))
	require.Equal(t, 2, g.Degree("c"))
}

func TestBuild_EmptyPatternRejected(t *testing.T) {
	t.Parallel()

	_, err := querygraph.Build(&querygraph.StructuredQuery{})
	require.ErrorIs(t, err, querygraph.ErrNoPatternEdges)
}

func TestBuild_EmptyVariableNameRejected(t *testing.T) {
	t.Parallel()

	_, err := querygraph.Build(&querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "", To: "b"}},
	})
	require.ErrorIs(t, err, querygraph.ErrEmptyVariableName)
}

func TestBuild_SelfLoopCountsDegreeOnce(t *testing.T) {
	t.Parallel()

	g, err := querygraph.Build(&querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "a", To: "a"}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, g.Degree("a"))
}

func TestEdgesBetween_FindsDirectConnection(t *testing.T) {
	t.Parallel()

	g, err := querygraph.Build(triangleQuery())
	require.NoError(t, err)

	require.Len(t, g.EdgesBetween("a", "b"), 1)
	require.Len(t, g.EdgesBetween("a", "c"), 1)
}

func TestValidate_ResolvesKnownTypeAndAnyType(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	followsID, err := reg.InternType("FOLLOWS")
	require.NoError(t, err)

	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b", EdgeType: strPtr("FOLLOWS")},
			{From: "b", To: "c"},
		},
	}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	resolved, err := querygraph.Validate(g, reg)
	require.NoError(t, err)
	require.Equal(t, followsID, resolved[0].EdgeType)
	require.Equal(t, registry.AnyTypeID, resolved[1].EdgeType)
}

func TestValidate_UnknownEdgeTypeRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "a", To: "b", EdgeType: strPtr("GHOST")}},
	}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrUnknownEdgeType)
}

func TestValidate_UnknownPredicateVariableRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	q := triangleQuery()
	q.Predicates = []querygraph.PropertyPredicate{{Variable: "z", Key: "age", Op: querygraph.OpEq}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrUnknownVariable)
}

func TestValidate_UnknownPropertyKeyRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	q := triangleQuery()
	q.Predicates = []querygraph.PropertyPredicate{{Variable: "a", Key: "age", Op: querygraph.OpEq}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrUnknownPropertyKey)
}

func TestValidate_CountStarAcceptsNoProperty(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	q := triangleQuery()
	q.Aggregations = []querygraph.AggregationSpec{{Func: querygraph.AggCount}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.NoError(t, err)
}

func TestValidate_SumWithoutPropertyRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	q := triangleQuery()
	q.Aggregations = []querygraph.AggregationSpec{{Func: querygraph.AggSum, Variable: "a"}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrInvalidAggregation)
}

func TestBuild_DuplicateEdgeVariableRejected(t *testing.T) {
	t.Parallel()

	_, err := querygraph.Build(&querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b", EdgeVariable: strPtr("r")},
			{From: "b", To: "c", EdgeVariable: strPtr("r")},
		},
	})
	require.ErrorIs(t, err, querygraph.ErrDuplicateEdgeVariable)
}

func TestBuild_EmptyEdgeVariableRejected(t *testing.T) {
	t.Parallel()

	_, err := querygraph.Build(&querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "a", To: "b", EdgeVariable: strPtr("")}},
	})
	require.ErrorIs(t, err, querygraph.ErrEmptyVariableName)
}

func TestValidate_EdgeQualifiedPredicateResolves(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	_, err := reg.InternKey("since")
	require.NoError(t, err)

	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "a", To: "b", EdgeVariable: strPtr("r")}},
	}
	q.Predicates = []querygraph.PropertyPredicate{{Variable: "r", IsEdge: true, Key: "since", Op: querygraph.OpEq}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	resolved, err := querygraph.Validate(g, reg)
	require.NoError(t, err)
	require.Equal(t, strPtr("r"), resolved[0].EdgeVariable)
}

func TestValidate_UnknownEdgeVariableRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	_, err := reg.InternKey("since")
	require.NoError(t, err)

	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{{From: "a", To: "b", EdgeVariable: strPtr("r")}},
	}
	q.Predicates = []querygraph.PropertyPredicate{{Variable: "ghost", IsEdge: true, Key: "since", Op: querygraph.OpEq}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrUnknownEdgeVariable)
}

func TestValidate_CountWithPropertyRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewTypeRegistry()
	_, err := reg.InternKey("age")
	require.NoError(t, err)

	q := triangleQuery()
	q.Aggregations = []querygraph.AggregationSpec{{Func: querygraph.AggCount, Variable: "a", Property: strPtr("age")}}
	g, err := querygraph.Build(q)
	require.NoError(t, err)

	_, err = querygraph.Validate(g, reg)
	require.ErrorIs(t, err, querygraph.ErrInvalidAggregation)
}
