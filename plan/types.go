package plan

import (
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// Rule extends a length-k prefix to length k+1 by reading
// Adj(prefix[PrefixIndex], Direction, Version, EdgeType).
type Rule struct {
	PrefixIndex int
	Direction   store.Direction
	Version     store.GraphVersion
	EdgeType    registry.ID
}

// Stage is the set of rules applied together to extend every prefix by one
// element: the executor intersects the neighbor lists named by every rule
// in the stage, smallest first (the min-count rule), before extending.
type Stage []Rule

// Plan is a deterministic variable ordering and the stage sequence that
// extends it. Seed is the rule set the executor uses to enumerate the
// initial length-2 prefix [Order[0], Order[1]] directly from the store's
// AllEdges directly ("stage 0 is special"); for a
// single-variable self-loop pattern (Order has length 1), Seed instead
// describes the self-loop edge and AllEdges yields prefixes [v, v].
// Stages[i] extends a length-(i+2) prefix using Order[i+2].
type Plan struct {
	Order     []string
	Seed      Stage
	Stages    []Stage
	ResultTag sink.Tag
}

// DeltaPlan is one of the n delta plans ContinuousMatchPlanner emits for an
// n-edge pattern: a designated diff-relation pattern-edge index and the two
// sub-plans that read its DIFF_PLUS (tagging EMERGED) and DIFF_MINUS
// (tagging DELETED) views respectively.
type DeltaPlan struct {
	DiffRelationEdgeIndex int
	Emerged               *Plan
	Deleted               *Plan
}
