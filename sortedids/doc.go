// Package sortedids implements SortedIdList, a growable, duplicate-free,
// ascending-sorted list of 32-bit vertex IDs, and the two-pointer
// intersection operation the generic-join executor uses to extend a join
// prefix.
//
// Intersect is associative and commutative on the resulting set — the
// executor relies on this to pick the cheapest evaluation order (smallest
// operand first) without changing the output.
package sortedids
