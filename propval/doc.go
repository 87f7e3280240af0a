// Package propval defines the typed property-value model shared by vertices
// and edges, and its binary wire encoding.
//
// A PropertyValue carries exactly one of four kinds: INT (int32), DOUBLE
// (float64), BOOLEAN, or STRING. The core never serializes a value unless
// asked to (e.g. by a caller persisting a snapshot; the file OutputSink
// writes values as text, not in this encoding);
// property storage inside the graph store keeps PropertyValue in its decoded
// Go form.
//
// Encoding (fixed, not implementation-defined):
//
//	INT     — 4 bytes, little-endian two's complement.
//	DOUBLE  — 8 bytes, big-endian IEEE-754 bit pattern.
//	BOOLEAN — 1 byte, 0x00 or 0x01.
//	STRING  — 4-byte big-endian length prefix, followed by that many UTF-8 bytes.
//
// Every encoded value is additionally prefixed by a 1-byte Kind tag so a
// decoder can dispatch without external type information.
package propval
