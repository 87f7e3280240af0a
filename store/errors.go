package store

import "errors"

// Sentinel errors returned by GraphStore operations.
var (
	// ErrMutationInconsistency reports a violated FORWARD/BACKWARD mirror
	// invariant, detected by CheckInvariant. Fatal: an internal assertion
	// failure, not a recoverable condition.
	ErrMutationInconsistency = errors.New("store: forward/backward adjacency mirror violated")

	// ErrEdgeNotFound indicates a GetEdge/SetEdgeProperty call referenced an
	// EdgeID that does not exist in the catalog, or that ResolveEdgeID found
	// no matching edge visible under the requested version.
	ErrEdgeNotFound = errors.New("store: edge not found")

	// ErrVertexNotFound names a VertexID never mentioned by AddEdge or
	// EnsureVertex. No GraphStore method returns it: VertexProperty and
	// VertexType report that case as a false result, and SetVertexType/
	// SetVertexProperty mention the vertex instead.
	ErrVertexNotFound = errors.New("store: vertex not found")

	// ErrNegativeVertexID indicates a caller supplied a negative VertexID;
	// vertex IDs are dense non-negative integers.
	ErrNegativeVertexID = errors.New("store: vertex ID must be non-negative")
)
