package join

import "errors"

// Sentinel errors for join execution. Callers should branch on these via
// errors.Is.
var (
	// ErrCanceled indicates Options.Ctx was done before or during
	// execution.
	ErrCanceled = errors.New("join: execution canceled")

	// ErrUnresolvedVariable indicates a Filter, Projection, or aggregation
	// clause names a variable absent from the plan's Order — a planner/
	// executor mismatch that indicates programmer error, not bad input.
	ErrUnresolvedVariable = errors.New("join: unresolved variable")

	// ErrNonNumericAggregand indicates SUM or AVG was asked to aggregate a
	// BOOLEAN or STRING property.
	ErrNonNumericAggregand = errors.New("join: aggregation requires a numeric property")
)
