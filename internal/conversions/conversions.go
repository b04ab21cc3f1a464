// Package conversions is a set of unsafe conversions from one type to another,
// such as reinterpreting a primitive slice as its raw byte representation.
package conversions

import "unsafe"

// FixedNumbers are numeric types that don't vary in size.
type FixedNumbers interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ToBytes returns the underlying storage of s as a byte slice without copying.
// The result aliases s: writes through either are visible to both. This
// mainly exists so a buffer can be handed to a foreign kernel whole.
func ToBytes[N FixedNumbers](s []N) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
