// Package join implements the GenericJoinExecutor and the operator
// pipeline wrapped around it: recursive, worst-case-optimal multiway
// intersection over a plan.Plan, followed by an optional chain of
// ResolveEdgeIDs, Filter, Project, and GroupByAndAggregate feeding an
// output sink.
//
// Executor is the single entry point: Execute runs a plan.Plan (MATCHED
// tuples) and ExecuteDelta runs a plan.DeltaPlan (EMERGED/DELETED tuples),
// both against a store.GraphStore and a sink.Sink. Execution is
// single-threaded per call; Options.Ctx governs cooperative cancellation
// between stages, checked the way a blocking-flow phase checks ctx.Err()
// between rounds.
package join
