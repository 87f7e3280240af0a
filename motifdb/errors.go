package motifdb

import "errors"

// ErrNoAggregationTarget indicates an AggregationSpec named a function
// other than COUNT with a nil Property — only COUNT(*) may omit one.
var ErrNoAggregationTarget = errors.New("motifdb: aggregation requires a property except COUNT(*)")
