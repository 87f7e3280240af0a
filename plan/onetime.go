package plan

import (
	"sort"

	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// OneTimeMatch builds the Plan for a one-time MATCH: every rule reads the
// PERMANENT view. g and resolved must come from the same querygraph.Build /
// querygraph.Validate call.
//
// The planner is deterministic: the same pattern always yields the same
// ordering and the same stages.
func OneTimeMatch(g *querygraph.QueryGraph, resolved []querygraph.ResolvedPatternEdge) (*Plan, error) {
	if len(resolved) == 0 {
		return nil, ErrEmptyPlan
	}

	order := orderVariables(g)
	seed, stages := emitStages(order, resolved, store.Permanent)

	return &Plan{Order: order, Seed: seed, Stages: stages, ResultTag: sink.Matched}, nil
}

// orderVariables picks the seed variable (max degree, ties broken by
// lexicographically smallest name) then greedily extends the order by
// (edges-to-covered, degree, name).
func orderVariables(g *querygraph.QueryGraph) []string {
	vars := g.Variables() // already sorted ascending by name

	seed := vars[0]
	for _, v := range vars[1:] {
		if g.Degree(v) > g.Degree(seed) {
			seed = v
		}
	}

	order := []string{seed}
	covered := map[string]bool{seed: true}
	remaining := make([]string, 0, len(vars)-1)
	for _, v := range vars {
		if v != seed {
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

// betterCandidate reports whether candidate should be chosen over incumbent
// given the current covered set, per the greedy-extension tie-break chain.
func betterCandidate(g *querygraph.QueryGraph, candidate, incumbent string, covered map[string]bool) bool {
	cConn, iConn := edgesToCovered(g, candidate, covered), edgesToCovered(g, incumbent, covered)
	if cConn != iConn {
		return cConn > iConn
	}
	cDeg, iDeg := g.Degree(candidate), g.Degree(incumbent)
	if cDeg != iDeg {
		return cDeg > iDeg
	}

	return candidate < incumbent
}

// edgesToCovered counts pattern edges connecting v to any variable already
// in covered.
func edgesToCovered(g *querygraph.QueryGraph, v string, covered map[string]bool) int {
	count := 0
	edges := g.Query().Edges
	for _, idx := range g.NeighborEdges(v) {
		e := edges[idx]
		other := e.From
		if other == v {
			other = e.To
		}
		if covered[other] {
			count++
		}
	}

	return count
}

// emitStages builds one Stage per order position past the seed, with every
// rule reading version. See bucketRules for the bucketing/Seed-split logic
// shared with ContinuousMatch.
func emitStages(order []string, resolved []querygraph.ResolvedPatternEdge, version store.GraphVersion) (Stage, []Stage) {
	return bucketRules(order, resolved, func(int) store.GraphVersion { return version })
}

// bucketRules groups each pattern edge by the position at which its later
// endpoint enters order, then returns one rule per edge in each bucket.
// Bucket 0 (only populated by a single-variable self-loop pattern) and
// bucket 1 (the rules connecting order[1] back to order[0], the ordinary
// case) both become Seed; buckets 2.. become Stages[0..]. Direction is
// FORWARD when the pattern edge, read the way its own Direction points,
// runs earlier->later, BACKWARD otherwise.
// versionFor assigns each pattern edge (by its index into resolved) the
// graph version its rule should read.
//
// A self-loop edge on a variable other than order[0] that also appears in
// a larger multi-variable pattern is out of scope: it would need to be
// checked as a post-hoc filter rather than a join rule, since it does not
// introduce a new prefix position. The worked scenarios never combine the
// two.
func bucketRules(order []string, resolved []querygraph.ResolvedPatternEdge, versionFor func(edgeIndex int) store.GraphVersion) (Stage, []Stage) {
	position := make(map[string]int, len(order))
	for i, v := range order {
		position[v] = i
	}

	buckets := make([]Stage, len(order))
	for i, e := range resolved {
		from, to := e.From, e.To
		if e.Direction == store.Backward {
			from, to = to, from // (From)<-(To): the stored edge runs To -> From
		}
		fromPos, toPos := position[from], position[to]
		later := fromPos
		if toPos > fromPos {
			later = toPos
		}
		earlier := fromPos + toPos - later

		dir := store.Forward
		if toPos == earlier {
			dir = store.Backward // pattern edge runs later -> earlier
		}

		buckets[later] = append(buckets[later], Rule{
			PrefixIndex: earlier,
			Direction:   dir,
			Version:     versionFor(i),
			EdgeType:    e.EdgeType,
		})
	}

	for _, s := range buckets {
		sort.Slice(s, func(i, j int) bool { return s[i].PrefixIndex < s[j].PrefixIndex })
	}

	if len(order) == 1 {
		return buckets[0], nil // self-loop-only pattern: Seed enumerates [v, v]
	}

	return buckets[1], buckets[2:]
}
