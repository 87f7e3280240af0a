package sink

import "github.com/motifquery/motifgraph/propval"

// Tag classifies a result tuple by how it arose: a plain MATCH hit, or a
// CONTINUOUS MATCH tuple that emerged or was deleted by the staged delta.
type Tag uint8

const (
	// Matched tags a tuple produced by a one-time MATCH.
	Matched Tag = iota
	// Emerged tags a tuple that newly satisfies the pattern because of a
	// DIFF_PLUS edge.
	Emerged
	// Deleted tags a tuple that no longer satisfies the pattern because of
	// a DIFF_MINUS edge.
	Deleted
)

// String renders tag using the keyword the file sink writes.
func (tag Tag) String() string {
	switch tag {
	case Matched:
		return "MATCHED"
	case Emerged:
		return "EMERGED"
	case Deleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// Tuple is one output row: an ordered vector of columns, each either a raw
// ID (vertex or edge, carried as propval.KindInt) or a resolved property
// value, tagged by how the tuple arose.
type Tuple struct {
	Tag     Tag
	Columns []propval.PropertyValue
}

// Sink is the contract every output destination implements.
type Sink interface {
	// Append adds one result tuple.
	Append(t Tuple) error
}
