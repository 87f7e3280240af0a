// Package plan_test verifies OneTimeMatch and ContinuousMatch produce
// deterministic orderings and stage structures for triangle, square, and
// self-loop pattern scenarios.
package plan_test

import (
	"testing"

	"github.com/motifquery/motifgraph/plan"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

func mustResolve(t *testing.T, q *querygraph.StructuredQuery, reg *registry.TypeRegistry) (*querygraph.QueryGraph, []querygraph.ResolvedPatternEdge) {
	t.Helper()
	g, err := querygraph.Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resolved, err := querygraph.Validate(g, reg)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	return g, resolved
}

func triangleQuery() *querygraph.StructuredQuery {
	return &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "a"},
		},
	}
}

// TestOneTimeMatch_Triangle locks in the deterministic ordering and stage
// shape for a 3-edge triangle pattern.
//
// Stage 1: build the triangle pattern and plan it one-time.
// Stage 2: assert the variable order is [a, b, c] (seed "a" by lex
//          tie-break, then greedy extension picks "b" before "c").
// Stage 3: assert Seed and Stages carry the expected rules, every one
//          reading PERMANENT and AnyTypeID.
func TestOneTimeMatch_Triangle(t *testing.T) {
	reg := registry.NewTypeRegistry()
	g, resolved := mustResolve(t, triangleQuery(), reg)

	p, err := plan.OneTimeMatch(g, resolved)
	if err != nil {
		t.Fatalf("OneTimeMatch: %v", err)
	}

	wantOrder := []string{"a", "b", "c"}
	if !equalStrings(p.Order, wantOrder) {
		t.Fatalf("Order = %v, want %v", p.Order, wantOrder)
	}
	if p.ResultTag != sink.Matched {
		t.Fatalf("ResultTag = %v, want Matched", p.ResultTag)
	}

	if len(p.Seed) != 1 || p.Seed[0] != (plan.Rule{PrefixIndex: 0, Direction: store.Forward, Version: store.Permanent, EdgeType: registry.AnyTypeID}) {
		t.Fatalf("Seed = %+v, want single forward rule on prefix[0]", p.Seed)
	}

	if len(p.Stages) != 1 {
		t.Fatalf("len(Stages) = %d, want 1", len(p.Stages))
	}
	wantStage := plan.Stage{
		{PrefixIndex: 0, Direction: store.Backward, Version: store.Permanent, EdgeType: registry.AnyTypeID},
		{PrefixIndex: 1, Direction: store.Forward, Version: store.Permanent, EdgeType: registry.AnyTypeID},
	}
	if !equalStages(p.Stages[0], wantStage) {
		t.Fatalf("Stages[0] = %+v, want %+v", p.Stages[0], wantStage)
	}
}

// TestOneTimeMatch_Square locks in the ordering and stage shape for a
// four-cycle pattern.
func TestOneTimeMatch_Square(t *testing.T) {
	reg := registry.NewTypeRegistry()
	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
			{From: "d", To: "a"},
		},
	}
	g, resolved := mustResolve(t, q, reg)

	p, err := plan.OneTimeMatch(g, resolved)
	if err != nil {
		t.Fatalf("OneTimeMatch: %v", err)
	}

	wantOrder := []string{"a", "b", "c", "d"}
	if !equalStrings(p.Order, wantOrder) {
		t.Fatalf("Order = %v, want %v", p.Order, wantOrder)
	}

	if len(p.Stages) != 2 {
		t.Fatalf("len(Stages) = %d, want 2", len(p.Stages))
	}
	wantLastStage := plan.Stage{
		{PrefixIndex: 0, Direction: store.Backward, Version: store.Permanent, EdgeType: registry.AnyTypeID},
		{PrefixIndex: 2, Direction: store.Forward, Version: store.Permanent, EdgeType: registry.AnyTypeID},
	}
	if !equalStages(p.Stages[1], wantLastStage) {
		t.Fatalf("Stages[1] = %+v, want %+v", p.Stages[1], wantLastStage)
	}
}

// TestOneTimeMatch_TypedTriangle verifies declared edge types are resolved
// and carried into the rules.
func TestOneTimeMatch_TypedTriangle(t *testing.T) {
	reg := registry.NewTypeRegistry()
	followsID, err := reg.InternType("FOLLOWS")
	if err != nil {
		t.Fatalf("InternType: %v", err)
	}
	likesID, err := reg.InternType("LIKES")
	if err != nil {
		t.Fatalf("InternType: %v", err)
	}

	followsLit, likesLit := "FOLLOWS", "LIKES"
	q := &querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b", EdgeType: &followsLit},
			{From: "b", To: "c", EdgeType: &likesLit},
			{From: "c", To: "a", EdgeType: &followsLit},
		},
	}
	g, resolved := mustResolve(t, q, reg)

	p, err := plan.OneTimeMatch(g, resolved)
	if err != nil {
		t.Fatalf("OneTimeMatch: %v", err)
	}

	if p.Seed[0].EdgeType != followsID {
		t.Fatalf("Seed[0].EdgeType = %d, want FOLLOWS (%d)", p.Seed[0].EdgeType, followsID)
	}
	foundLikes := false
	for _, r := range p.Stages[0] {
		if r.EdgeType == likesID {
			foundLikes = true
		}
	}
	if !foundLikes {
		t.Fatalf("Stages[0] = %+v, want a rule carrying LIKES", p.Stages[0])
	}
}

// TestOneTimeMatch_SelfLoopOnly covers the boundary case where a pattern
// that is only a self-loop has a single-variable Order and an empty Stages
// list, with the self-loop rule captured entirely by Seed.
func TestOneTimeMatch_SelfLoopOnly(t *testing.T) {
	reg := registry.NewTypeRegistry()
	q := &querygraph.StructuredQuery{Edges: []querygraph.PatternEdge{{From: "a", To: "a"}}}
	g, resolved := mustResolve(t, q, reg)

	p, err := plan.OneTimeMatch(g, resolved)
	if err != nil {
		t.Fatalf("OneTimeMatch: %v", err)
	}

	if !equalStrings(p.Order, []string{"a"}) {
		t.Fatalf("Order = %v, want [a]", p.Order)
	}
	if len(p.Stages) != 0 {
		t.Fatalf("len(Stages) = %d, want 0", len(p.Stages))
	}
	if len(p.Seed) != 1 {
		t.Fatalf("len(Seed) = %d, want 1", len(p.Seed))
	}
}

// TestOneTimeMatch_EmptyPatternRejected covers the boundary case where an
// edgeless pattern is rejected at plan time.
func TestOneTimeMatch_EmptyPatternRejected(t *testing.T) {
	_, err := plan.OneTimeMatch(&querygraph.QueryGraph{}, nil)
	if err != plan.ErrEmptyPlan {
		t.Fatalf("err = %v, want ErrEmptyPlan", err)
	}
}

// TestContinuousMatch_TriangleProducesThreeDeltaPlans verifies the delta
// decomposition count and tagging for the 3-edge triangle pattern.
func TestContinuousMatch_TriangleProducesThreeDeltaPlans(t *testing.T) {
	reg := registry.NewTypeRegistry()
	g, resolved := mustResolve(t, triangleQuery(), reg)

	deltas, err := plan.ContinuousMatch(g, resolved)
	if err != nil {
		t.Fatalf("ContinuousMatch: %v", err)
	}
	if len(deltas) != 3 {
		t.Fatalf("len(deltas) = %d, want 3", len(deltas))
	}

	for i, d := range deltas {
		if d.DiffRelationEdgeIndex != i {
			t.Fatalf("deltas[%d].DiffRelationEdgeIndex = %d, want %d", i, d.DiffRelationEdgeIndex, i)
		}
		if d.Emerged.ResultTag != sink.Emerged {
			t.Fatalf("deltas[%d].Emerged.ResultTag = %v, want Emerged", i, d.Emerged.ResultTag)
		}
		if d.Deleted.ResultTag != sink.Deleted {
			t.Fatalf("deltas[%d].Deleted.ResultTag = %v, want Deleted", i, d.Deleted.ResultTag)
		}

		diffEdge := resolved[i]
		if d.Emerged.Order[0] != diffEdge.From || d.Emerged.Order[1] != diffEdge.To {
			t.Fatalf("deltas[%d].Emerged.Order = %v, want to start with [%s %s]", i, d.Emerged.Order, diffEdge.From, diffEdge.To)
		}
		if d.Emerged.Seed[0].Version != store.DiffPlus {
			t.Fatalf("deltas[%d].Emerged.Seed[0].Version = %v, want DiffPlus", i, d.Emerged.Seed[0].Version)
		}
		if d.Deleted.Seed[0].Version != store.DiffMinus {
			t.Fatalf("deltas[%d].Deleted.Seed[0].Version = %v, want DiffMinus", i, d.Deleted.Seed[0].Version)
		}
	}

	// Edges after the diff relation read PERMANENT; the triangle's 3rd delta
	// plan (diffIdx=2) has no edges after it, so every other edge (indices
	// 0,1) reads MERGED. Its Seed holds only the diff relation's rule, and
	// no Seed rule may read anything but MERGED or DiffPlus.
	last := deltas[2]
	for _, r := range last.Emerged.Seed {
		if r.Version != store.Merged && r.Version != store.DiffPlus {
			t.Fatalf("delta[2].Emerged.Seed rule version = %v, want Merged or DiffPlus", r.Version)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStages(a, b plan.Stage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
