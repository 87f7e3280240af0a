package querygraph

import "sort"

// QueryGraph is the undirected view of a pattern: for each variable, the
// set of pattern-edge indices incident to it, used by the planner to
// compute degrees and the neighbor sets of variables without re-scanning
// the pattern edge list.
type QueryGraph struct {
	query        *StructuredQuery
	variables    []string         // sorted ascending, deduplicated
	incident     map[string][]int // variable -> indices into query.Edges
	edgeVarIndex map[string]int   // edge variable name -> index into query.Edges
}

// Build constructs the undirected query graph of q. It does not validate
// type/property literals against a registry; call Validate for that.
//
// Complexity: O(E log E) to sort variables.
func Build(q *StructuredQuery) (*QueryGraph, error) {
	if len(q.Edges) == 0 {
		return nil, ErrNoPatternEdges
	}

	seen := make(map[string]bool)
	incident := make(map[string][]int)
	edgeVarIndex := make(map[string]int)
	for i, e := range q.Edges {
		if e.From == "" || e.To == "" {
			return nil, ErrEmptyVariableName
		}
		if !seen[e.From] {
			seen[e.From] = true
		}
		if !seen[e.To] {
			seen[e.To] = true
		}
		incident[e.From] = append(incident[e.From], i)
		if e.To != e.From {
			incident[e.To] = append(incident[e.To], i)
		}
		if e.EdgeVariable != nil {
			if *e.EdgeVariable == "" {
				return nil, ErrEmptyVariableName
			}
			if _, dup := edgeVarIndex[*e.EdgeVariable]; dup {
				return nil, ErrDuplicateEdgeVariable
			}
			edgeVarIndex[*e.EdgeVariable] = i
		}
	}

	variables := make([]string, 0, len(seen))
	for v := range seen {
		variables = append(variables, v)
	}
	sort.Strings(variables)

	return &QueryGraph{query: q, variables: variables, incident: incident, edgeVarIndex: edgeVarIndex}, nil
}

// Query returns the StructuredQuery this graph was built from.
func (g *QueryGraph) Query() *StructuredQuery { return g.query }

// Variables returns every pattern variable, sorted lexicographically.
func (g *QueryGraph) Variables() []string {
	out := make([]string, len(g.variables))
	copy(out, g.variables)

	return out
}

// Degree returns the number of distinct pattern edges incident to v
// (a self-loop edge counts once).
func (g *QueryGraph) Degree(v string) int {
	return len(g.incident[v])
}

// NeighborEdges returns the indices into Query().Edges of every pattern
// edge incident to v, in pattern declaration order.
func (g *QueryGraph) NeighborEdges(v string) []int {
	idx := g.incident[v]
	out := make([]int, len(idx))
	copy(out, idx)

	return out
}

// EdgeVariableIndex returns the pattern-edge index name was declared as
// EdgeVariable on, and whether any pattern edge declared it.
func (g *QueryGraph) EdgeVariableIndex(name string) (int, bool) {
	i, ok := g.edgeVarIndex[name]
	return i, ok
}

// EdgeVariables returns a copy of the edge-variable name to pattern-edge
// index map built from every PatternEdge.EdgeVariable in the pattern.
func (g *QueryGraph) EdgeVariables() map[string]int {
	out := make(map[string]int, len(g.edgeVarIndex))
	for k, v := range g.edgeVarIndex {
		out[k] = v
	}

	return out
}

// EdgesBetween returns the indices of pattern edges connecting u and v in
// either direction.
func (g *QueryGraph) EdgesBetween(u, v string) []int {
	var out []int
	for _, i := range g.incident[u] {
		e := g.query.Edges[i]
		if e.From == v || e.To == v {
			out = append(out, i)
		}
	}

	return out
}
