// Package sink implements the OutputSink contract that query execution
// writes result tuples into: an in-memory sink supporting multiset
// equality for tests, and a file sink writing the human-readable
// one-line-per-tuple format.
//
// A tuple is an ordered vector of columns, each a propval.PropertyValue so
// the sink can render it (a raw vertex or edge ID carried as an INT, or a
// resolved property value), tagged MATCHED, EMERGED, or DELETED. Sinks make no ordering guarantee
// beyond what the executor already provides: batches arrive in issue
// order, tuples within a batch in the final stage's ascending extension
// order.
package sink
