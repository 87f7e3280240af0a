package join_test

import (
	"fmt"
	"sort"

	"github.com/motifquery/motifgraph/join"
	"github.com/motifquery/motifgraph/plan"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/store"
)

// ExampleExecutor_Execute matches a triangle pattern against a small graph
// and prints the resulting motifs.
func ExampleExecutor_Execute() {
	s := store.NewGraphStore()
	for _, e := range [][2]int32{{0, 1}, {1, 2}, {2, 0}} {
		if _, err := s.AddEdge(store.VertexID(e[0]), store.VertexID(e[1]), registry.AnyTypeID); err != nil {
			panic(err)
		}
	}
	if err := s.Commit(); err != nil {
		panic(err)
	}

	reg := registry.NewTypeRegistry()
	g, err := querygraph.Build(&querygraph.StructuredQuery{
		Edges: []querygraph.PatternEdge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "a"},
		},
	})
	if err != nil {
		panic(err)
	}
	resolved, err := querygraph.Validate(g, reg)
	if err != nil {
		panic(err)
	}
	p, err := plan.OneTimeMatch(g, resolved)
	if err != nil {
		panic(err)
	}

	ms := sink.NewMemorySink()
	ex := join.NewExecutor(s)
	if err := ex.Execute(p, ms); err != nil {
		panic(err)
	}

	var lines []string
	for _, t := range ms.Tuples() {
		a, _ := t.Columns[0].IntValue()
		b, _ := t.Columns[1].IntValue()
		c, _ := t.Columns[2].IntValue()
		lines = append(lines, fmt.Sprintf("(%d,%d,%d)", a, b, c))
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Println(l)
	}

	// Output:
	// (0,1,2)
	// (1,2,0)
	// (2,0,1)
}
