// Package motifgraph is an in-memory property-graph database that evaluates
// a restricted Cypher-like pattern-matching language over a mutable, labeled,
// directed multigraph.
//
// What is motifgraph?
//
//	A pattern-matching core built around three tightly coupled subsystems:
//
//	  • A versioned graph store that exposes PERMANENT, DIFF_PLUS, DIFF_MINUS
//	    and MERGED views without materializing copies.
//	  • A variable-ordering planner that compiles a conjunctive edge pattern
//	    into generic-join stages, and a continuous planner that expands one
//	    plan into delta plans for incremental view maintenance.
//	  • A worst-case-optimal generic-join executor: a recursive multiway
//	    intersection over sorted neighbor lists, producing tagged tuples in
//	    batches.
//
// Why motifgraph?
//
//   - One-time MATCH against the current graph state.
//   - CONTINUOUS MATCH that reports which motifs EMERGED or were DELETED
//     after a batch of edge additions and deletions, without recomputing
//     the whole answer set.
//   - No parser, no network front-end, no persistence baked in — those are
//     external collaborators; motifgraph consumes a StructuredQuery value
//     and hands tagged tuples to a pluggable OutputSink.
//
// Package layout:
//
//	propval/    — typed property values (INT/DOUBLE/BOOLEAN/STRING) + codec
//	registry/   — interning of edge-type and property-key names
//	sortedids/  — sorted, duplicate-free vertex-ID lists + intersection
//	store/      — versioned adjacency index (GraphStore)
//	querygraph/ — StructuredQuery / QueryGraph (parsed-pattern representation)
//	plan/       — OneTimeMatchPlanner / ContinuousMatchPlanner
//	join/       — GenericJoinExecutor + the operator pipeline around it
//	sink/       — OutputSink contract (in-memory, file)
//	motifdb/    — facade wiring the above into a single Database entry point
//
// Quick usage sketch (see motifdb's package doc for a runnable example):
//
//	db := motifdb.New()
//	db.AddEdge(0, 1, followsType)
//	db.Commit()
//	db.Match(query, sink.NewMemorySink())
//
// motifgraph targets single-writer, single-reader-at-a-time usage: mutation
// and query execution are mutually exclusive, serialized through the store's
// lock.
package motifgraph
