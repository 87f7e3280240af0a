package plan

import (
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// ContinuousMatch builds the n delta plans for an n-edge pattern. For delta
// plan i, pattern-edge i is the diff relation: edges before it in pattern
// order use MERGED, edge i itself uses DIFF_PLUS (Emerged) or DIFF_MINUS
// (Deleted), and edges after it use PERMANENT. Variable ordering inside
// each delta plan starts at the diff relation's two endpoints (from, then
// to) and extends via the same greedy rule OneTimeMatch uses for the
// remainder.
func ContinuousMatch(g *querygraph.QueryGraph, resolved []querygraph.ResolvedPatternEdge) ([]DeltaPlan, error) {
	if len(resolved) == 0 {
		return nil, ErrEmptyPlan
	}

	deltaPlans := make([]DeltaPlan, len(resolved))
	for i := range resolved {
		order := orderFromDiffRelation(g, resolved, i)

		deltaPlans[i] = DeltaPlan{
			DiffRelationEdgeIndex: i,
			Emerged:               buildDeltaSubPlan(order, resolved, i, store.DiffPlus, sink.Emerged),
			Deleted:               buildDeltaSubPlan(order, resolved, i, store.DiffMinus, sink.Deleted),
		}
	}

	return deltaPlans, nil
}

// orderFromDiffRelation builds the variable ordering for delta plan
// diffIdx: the diff relation's two endpoints first, then the remainder via
// the same greedy rule as orderVariables.
func orderFromDiffRelation(g *querygraph.QueryGraph, resolved []querygraph.ResolvedPatternEdge, diffIdx int) []string {
	diff := resolved[diffIdx]
	order := []string{diff.From}
	covered := map[string]bool{diff.From: true}
	if diff.To != diff.From {
		order = append(order, diff.To)
		covered[diff.To] = true
	}

	vars := g.Variables()
	remaining := make([]string, 0, len(vars))
	for _, v := range vars {
		if !covered[v] {
			remaining = append(remaining, v)
		}
	}

	for len(remaining) > 0 {
		best := 0
		for i := 1; i < len(remaining); i++ {
			if betterCandidate(g, remaining[i], remaining[best], covered) {
				best = i
			}
		}
		order = append(order, remaining[best])
		covered[remaining[best]] = true
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return order
}

// buildDeltaSubPlan emits one sub-plan (Emerged or Deleted side) of a delta
// plan: edges before diffIdx in pattern order use MERGED, diffIdx itself
// uses diffVersion, and edges after it use PERMANENT.
func buildDeltaSubPlan(order []string, resolved []querygraph.ResolvedPatternEdge, diffIdx int, diffVersion store.GraphVersion, tag sink.Tag) *Plan {
	seed, stages := emitStagesPerEdgeVersion(order, resolved, diffIdx, diffVersion)

	return &Plan{Order: order, Seed: seed, Stages: stages, ResultTag: tag}
}

// emitStagesPerEdgeVersion is bucketRules specialized to the delta-plan
// per-edge-position version assignment: edges before diffIdx read MERGED,
// diffIdx itself reads diffVersion, edges after it read PERMANENT.
func emitStagesPerEdgeVersion(order []string, resolved []querygraph.ResolvedPatternEdge, diffIdx int, diffVersion store.GraphVersion) (Stage, []Stage) {
	return bucketRules(order, resolved, func(i int) store.GraphVersion {
		switch {
		case i < diffIdx:
			return store.Merged
		case i == diffIdx:
			return diffVersion
		default:
			return store.Permanent
		}
	})
}
