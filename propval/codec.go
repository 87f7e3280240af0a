package propval

import (
	"encoding/binary"
	"math"
)

// kindTagLen is the width, in bytes, of the leading Kind discriminator that
// precedes every encoded PropertyValue.
const kindTagLen = 1

// Encode appends the wire form of v to dst and returns the extended slice.
//
// Layout: 1-byte Kind tag, followed by the Kind-specific payload described
// in the package doc comment (INT: 4 bytes little-endian; DOUBLE: 8 bytes
// big-endian IEEE-754; BOOLEAN: 1 byte; STRING: 4-byte big-endian length
// prefix + UTF-8 bytes).
//
// Complexity: O(1) for INT/DOUBLE/BOOLEAN, O(len(string)) for STRING.
func Encode(dst []byte, v PropertyValue) []byte {
	dst = append(dst, byte(v.Kind))
	switch v.Kind {
	case KindInt:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(v.intVal))
		dst = append(dst, buf[:]...)
	case KindDouble:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.doubleVal))
		dst = append(dst, buf[:]...)
	case KindBoolean:
		if v.boolVal {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	case KindString:
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(v.stringVal)))
		dst = append(dst, lenBuf[:]...)
		dst = append(dst, v.stringVal...)
	}

	return dst
}

// Decode reads one PropertyValue from the front of buf and returns it along
// with the number of bytes consumed. Returns ErrTruncatedBuffer if buf ends
// before the declared payload, and ErrUnknownKind for an unrecognized tag.
//
// Complexity: O(1) for INT/DOUBLE/BOOLEAN, O(declared string length) for STRING.
func Decode(buf []byte) (PropertyValue, int, error) {
	if len(buf) < kindTagLen {
		return PropertyValue{}, 0, ErrTruncatedBuffer
	}
	kind := Kind(buf[0])
	rest := buf[kindTagLen:]

	switch kind {
	case KindInt:
		if len(rest) < 4 {
			return PropertyValue{}, 0, ErrTruncatedBuffer
		}
		v := int32(binary.LittleEndian.Uint32(rest[:4]))
		return NewInt(v), kindTagLen + 4, nil

	case KindDouble:
		if len(rest) < 8 {
			return PropertyValue{}, 0, ErrTruncatedBuffer
		}
		bits := binary.BigEndian.Uint64(rest[:8])
		return NewDouble(math.Float64frombits(bits)), kindTagLen + 8, nil

	case KindBoolean:
		if len(rest) < 1 {
			return PropertyValue{}, 0, ErrTruncatedBuffer
		}
		return NewBool(rest[0] != 0), kindTagLen + 1, nil

	case KindString:
		if len(rest) < 4 {
			return PropertyValue{}, 0, ErrTruncatedBuffer
		}
		n := binary.BigEndian.Uint32(rest[:4])
		rest = rest[4:]
		if uint64(len(rest)) < uint64(n) {
			return PropertyValue{}, 0, ErrTruncatedBuffer
		}
		s := string(rest[:n])
		return NewString(s), kindTagLen + 4 + int(n), nil

	default:
		return PropertyValue{}, 0, ErrUnknownKind
	}
}
