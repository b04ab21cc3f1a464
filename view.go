package memview

import (
	"iter"

	"github.com/arraykit/memview/dtype"
	"github.com/arraykit/memview/internal/pragma"
)

type doNotImplement pragma.DoNotImplement

// Range is a half-open index interval [Low, High).
type Range struct {
	Low  int
	High int
}

// Contains reports whether i falls inside the interval.
func (r Range) Contains(i int) bool {
	return i >= r.Low && i < r.High
}

// View is the read-only capability contract every buffer holder satisfies.
// A View owns exactly one contiguous primitive buffer whose length is fixed
// for the holder's lifetime. Views perform no internal locking: mutating a
// holder concurrently with iteration or copying on another goroutine is
// undefined, callers needing that must impose their own exclusion.
type View interface {
	// DataType returns the logical kind of the elements.
	DataType() dtype.Type

	// Get returns the element at index. It fails with ErrIndexOutOfRange if
	// index is outside [0, Len).
	Get(index int) (Scalar, error)

	// All returns a restartable iterator over the elements in ascending
	// index order.
	All() iter.Seq[Scalar]

	// CopyOf returns a holder of the same concrete kind backed by a freshly
	// duplicated buffer. The copy never aliases the source.
	CopyOf() MemoryView

	// Int8s returns the raw backing buffer if the view holds int8 elements
	// and fails with ErrUnsupportedReinterpret otherwise. The result aliases
	// the view's memory. The six reinterpret accessors exist so a caller
	// that already knows the concrete kind can hand the buffer to a bulk
	// kernel without a generic detour.
	Int8s() ([]int8, error)
	// Int16s is the int16 counterpart of Int8s.
	Int16s() ([]int16, error)
	// Int32s is the int32 counterpart of Int8s.
	Int32s() ([]int32, error)
	// Int64s is the int64 counterpart of Int8s.
	Int64s() ([]int64, error)
	// Float32s is the float32 counterpart of Int8s.
	Float32s() ([]float32, error)
	// Float64s is the float64 counterpart of Int8s.
	Float64s() ([]float64, error)

	// Equal reports whether o has the same concrete kind, the same length
	// and pairwise equal elements in index order. Views of different kinds
	// are never equal, even if their elements match under numeric coercion.
	Equal(o View) bool

	// Hash folds the elements in index order with a fixed multiplier.
	// Views that compare Equal hash equal.
	Hash() uint64

	doNotImplement
}

// MemoryView is the mutable capability contract. It is the sole handle the
// array layer above should hold.
type MemoryView interface {
	View

	// Set replaces the element at index. It fails with ErrIndexOutOfRange if
	// index is outside [0, Len) and with ErrTypeMismatch if v's kind does
	// not match the view's kind.
	Set(index int, v Scalar) error

	// Len returns the element count.
	Len() int

	// Indices returns the valid index interval [0, Len). It is derived from
	// the buffer length at construction and never diverges from it.
	Indices() Range

	// LastIndex returns Len()-1, or -1 for an empty view.
	LastIndex() int
}
