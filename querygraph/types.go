package querygraph

import (
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/store"
)

// PatternEdge is one directed edge of a parsed pattern: a variable pair
// joined by an optional edge-type literal. EdgeType is nil for "any type".
// Direction records which way the query author wrote the arrow
// (FORWARD for `(From)-[:T]->(To)`, BACKWARD for `(From)<-[:T]-(To)`); it is
// the direction the planner reads when emitting IntersectionRules that
// reference this edge directly, not a constraint on how other rules may
// traverse it.
//
// EdgeVariable optionally names the edge itself (Cypher's `[r:T]`), letting
// WHERE/RETURN reference the edge's own properties alongside its endpoint
// vertices'. Nil if the pattern never refers to this edge by name.
type PatternEdge struct {
	From         string
	To           string
	EdgeType     *string
	Direction    store.Direction
	EdgeVariable *string
}

// Op is a property-predicate comparison operator.
type Op uint8

const (
	OpEq Op = iota
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

// String renders op using its symbolic form, e.g. for diagnostics.
func (op Op) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNeq:
		return "<>"
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	default:
		return "?"
	}
}

// PropertyPredicate is one WHERE clause conjunct: Variable.Key <op> Value.
// IsEdge selects which namespace Variable resolves against: false for a
// pattern vertex variable (a PatternEdge.From/To), true for a
// PatternEdge.EdgeVariable.
type PropertyPredicate struct {
	Variable string
	IsEdge   bool
	Key      string
	Op       Op
	Value    propval.PropertyValue
}

// ProjectionItem is one RETURN column. Property is nil to project the
// variable's resolved ID itself (a vertex ID, or an edge ID when IsEdge);
// non-nil to project a named property of that variable. IsEdge selects
// Variable's namespace, as PropertyPredicate.IsEdge does.
type ProjectionItem struct {
	Variable string
	IsEdge   bool
	Property *string
}

// AggFunc is a supported aggregation function.
type AggFunc uint8

const (
	AggCount AggFunc = iota
	AggSum
	AggMin
	AggMax
	AggAvg
)

// String renders fn using its Cypher-like keyword.
func (fn AggFunc) String() string {
	switch fn {
	case AggCount:
		return "COUNT"
	case AggSum:
		return "SUM"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	case AggAvg:
		return "AVG"
	default:
		return "?"
	}
}

// AggregationSpec is one aggregation in the RETURN clause. Property is nil
// only for AggCount, representing COUNT(*); every other function requires
// a property to aggregate over. IsEdge selects Variable's namespace, as
// PropertyPredicate.IsEdge does; it is ignored for COUNT(*), which has no
// Variable to resolve.
type AggregationSpec struct {
	Func     AggFunc
	Variable string
	IsEdge   bool
	Property *string
}

// StructuredQuery is the parsed, syntax-agnostic form of a query: an
// ordered pattern, its predicates, its projection, and its aggregations.
// It is produced once by a parser (out of this module's scope) and
// consumed once by the planner.
type StructuredQuery struct {
	Edges        []PatternEdge
	Predicates   []PropertyPredicate
	Projection   []ProjectionItem
	Aggregations []AggregationSpec
}

// ResolvedPatternEdge mirrors PatternEdge with EdgeType interned against a
// registry.TypeRegistry, produced by Validate for the planner to consume
// without repeating name lookups.
type ResolvedPatternEdge struct {
	From, To     string
	EdgeType     registry.ID
	Direction    store.Direction
	EdgeVariable *string
}
