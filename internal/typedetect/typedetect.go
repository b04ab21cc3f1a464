// Package typedetect provides utilities for detecting the characteristics of
// generic numeric type parameters at runtime using unsafe operations.
package typedetect

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number represents all int, uint and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFloat returns true if T is a floating point type.
func IsFloat[T Number]() bool {
	// Use the NaN property: NaN != NaN only holds for floats.
	switch unsafe.Sizeof(T(0)) {
	case 4:
		nanBits := uint32(0x7FC00000) // float32 NaN
		nan := *(*T)(unsafe.Pointer(&nanBits))
		return nan != nan
	case 8:
		nanBits := uint64(0x7FF8000000000000) // float64 NaN
		nan := *(*T)(unsafe.Pointer(&nanBits))
		return nan != nan
	default:
		return false
	}
}

// Width returns the size of T in bytes.
func Width[T Number]() int {
	var t T
	return int(unsafe.Sizeof(t))
}
