// Package plan turns a validated query pattern (package querygraph) into an
// executable Plan: a deterministic variable ordering and, for each step
// past the first two variables, a Stage of IntersectionRules the executor
// in package join consumes to extend partial matches.
//
// OneTimeMatchPlanner implements the single seed-then-greedy-extend
// ordering heuristic and emits one Plan with every rule reading the
// PERMANENT view. ContinuousMatchPlanner implements the delta
// decomposition: for a pattern with n edges it produces n DeltaPlans, one
// per candidate "diff relation" edge, each splitting into
// an EMERGED sub-plan reading that edge's DIFF_PLUS view and a DELETED
// sub-plan reading its DIFF_MINUS view.
//
// Plans are stateless value types once built: constructing one does not
// touch the graph store, and the same Plan may be reused across many
// executions as long as the pattern's types still resolve.
package plan
