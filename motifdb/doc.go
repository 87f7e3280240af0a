// Package motifdb is the facade wiring store, plan, join, and sink into a
// single Database entry point, the way a caller outside this module is
// meant to use it.
//
// Example:
//
//	db := motifdb.New()
//	follows := "FOLLOWS"
//	followsType, _ := db.InternEdgeType(follows)
//	db.AddEdge(0, 1, followsType)
//	db.AddEdge(1, 2, followsType)
//	db.AddEdge(2, 0, followsType)
//	db.Commit()
//
//	ms := sink.NewMemorySink()
//	db.Match(&querygraph.StructuredQuery{
//		Edges: []querygraph.PatternEdge{
//			{From: "a", To: "b", EdgeType: &follows},
//			{From: "b", To: "c", EdgeType: &follows},
//			{From: "c", To: "a", EdgeType: &follows},
//		},
//	}, ms)
//
// Match runs a one-time MATCH. ContinuousMatch decomposes the same pattern
// into delta plans and reports only what EMERGED or was DELETED since the
// last commit. Query wraps Match with the WHERE/RETURN operator pipeline
// (Filter, Projection, GroupByAndAggregate).
package motifdb
