package plan

import "errors"

// Sentinel errors for plan construction. Callers should branch on these via
// errors.Is.
var (
	// ErrEmptyPlan indicates a pattern with no edges was handed to a
	// planner; rejected at plan time.
	ErrEmptyPlan = errors.New("plan: pattern has no edges, nothing to plan")
)
