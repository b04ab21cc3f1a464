package memview

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/arraykit/memview/dtype"
	"github.com/arraykit/memview/internal/conversions"
	"github.com/arraykit/memview/internal/pragma"
	"github.com/arraykit/memview/internal/typedetect"
)

// Element constrains the primitive kinds a buffer can hold. The set is
// closed: one monomorphized Buffer variant exists per kind, and the compiler
// enforces kind consistency on the typed accessors.
type Element interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// KindOf returns the dtype tag for the element kind N.
func KindOf[N Element]() dtype.Type {
	switch typedetect.Width[N]() {
	case 1:
		return dtype.Int8
	case 2:
		return dtype.Int16
	case 4:
		if typedetect.IsFloat[N]() {
			return dtype.Float32
		}
		return dtype.Int32
	case 8:
		if typedetect.IsFloat[N]() {
			return dtype.Float64
		}
		return dtype.Int64
	}
	var n N
	panic(fmt.Sprintf("unsupported element type %T", n))
}

// Buffer is the concrete buffer holder for element kind N. It owns exactly
// one primitive buffer whose length is fixed for the holder's lifetime; an
// operation that needs a different length must produce a new holder. No
// buffer is ever shared between two holders.
type Buffer[N Element] struct {
	kind dtype.Type
	data []N

	// Derived from len(data) at construction and cached for repeated access.
	size      int
	indices   Range
	lastIndex int
}

// NewBuffer returns a zero-valued holder of the given length.
func NewBuffer[N Element](size int) *Buffer[N] {
	return newBuffer(make([]N, size))
}

// NewBufferFunc returns a holder where element i is fn(i). fn is invoked
// once per index, in ascending order, at construction only.
func NewBufferFunc[N Element](size int, fn func(i int) N) *Buffer[N] {
	data := make([]N, size)
	for i := range data {
		data[i] = fn(i)
	}
	return newBuffer(data)
}

// BufferOf returns a holder with the given values in order. The values are
// copied; the holder never aliases the caller's memory.
func BufferOf[N Element](values ...N) *Buffer[N] {
	data := make([]N, len(values))
	copy(data, values)
	return newBuffer(data)
}

func newBuffer[N Element](data []N) *Buffer[N] {
	return &Buffer[N]{
		kind:      KindOf[N](),
		data:      data,
		size:      len(data),
		indices:   Range{Low: 0, High: len(data)},
		lastIndex: len(data) - 1,
	}
}

// DataType returns the logical kind of the elements.
func (b *Buffer[N]) DataType() dtype.Type {
	return b.kind
}

// Len returns the element count.
func (b *Buffer[N]) Len() int {
	return b.size
}

// Indices returns the valid index interval [0, Len).
func (b *Buffer[N]) Indices() Range {
	return b.indices
}

// LastIndex returns Len()-1, or -1 for an empty holder.
func (b *Buffer[N]) LastIndex() int {
	return b.lastIndex
}

// At returns the element at index without going through the Scalar path.
func (b *Buffer[N]) At(index int) (N, error) {
	if !b.indices.Contains(index) {
		var zero N
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, valid range [0, %d)", index, b.size)
	}
	return b.data[index], nil
}

// SetAt replaces the element at index. The element kind is enforced at
// compile time.
func (b *Buffer[N]) SetAt(index int, v N) error {
	if !b.indices.Contains(index) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, valid range [0, %d)", index, b.size)
	}
	b.data[index] = v
	return nil
}

// Get implements View.Get.
func (b *Buffer[N]) Get(index int) (Scalar, error) {
	if !b.indices.Contains(index) {
		return Scalar{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, valid range [0, %d)", index, b.size)
	}
	return ScalarOf(b.data[index]), nil
}

// Set implements MemoryView.Set.
func (b *Buffer[N]) Set(index int, v Scalar) error {
	if !b.indices.Contains(index) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, valid range [0, %d)", index, b.size)
	}
	if v.t != b.kind {
		return errors.Wrapf(ErrTypeMismatch, "cannot set %s value in %s view", v.t, b.kind)
	}
	b.data[index] = scalarValue[N](v)
	return nil
}

// All returns a restartable iterator over the elements in ascending index
// order. Mutating the holder while an iteration is in progress on another
// goroutine is undefined.
func (b *Buffer[N]) All() iter.Seq[Scalar] {
	return func(yield func(Scalar) bool) {
		for _, v := range b.data {
			if !yield(ScalarOf(v)) {
				return
			}
		}
	}
}

// Values is the typed counterpart of All.
func (b *Buffer[N]) Values() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, v := range b.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a holder of the same kind backed by a freshly duplicated
// buffer. Mutating the clone never affects the source.
func (b *Buffer[N]) Clone() *Buffer[N] {
	data := make([]N, len(b.data))
	copy(data, b.data)
	return newBuffer(data)
}

// CopyOf implements View.CopyOf.
func (b *Buffer[N]) CopyOf() MemoryView {
	return b.Clone()
}

// Slice converts this into a standard []N. The values aren't linked, so
// changing []N or calling SetAt will have no effect on the other. If there
// are no entries, this returns a nil slice.
func (b *Buffer[N]) Slice() []N {
	if b.size == 0 {
		return nil
	}
	out := make([]N, len(b.data))
	copy(out, b.data)
	return out
}

// Raw returns the backing buffer itself. Writes through the result are
// visible to the holder.
func (b *Buffer[N]) Raw() []N {
	return b.data
}

// Bytes returns the backing buffer reinterpreted as raw bytes for handing to
// a foreign kernel. The result aliases the holder's memory.
func (b *Buffer[N]) Bytes() []byte {
	return conversions.ToBytes(b.data)
}

// Int8s implements View.Int8s.
func (b *Buffer[N]) Int8s() ([]int8, error) {
	if v, ok := any(b.data).([]int8); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not int8", b.kind)
}

// Int16s implements View.Int16s.
func (b *Buffer[N]) Int16s() ([]int16, error) {
	if v, ok := any(b.data).([]int16); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not int16", b.kind)
}

// Int32s implements View.Int32s.
func (b *Buffer[N]) Int32s() ([]int32, error) {
	if v, ok := any(b.data).([]int32); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not int32", b.kind)
}

// Int64s implements View.Int64s.
func (b *Buffer[N]) Int64s() ([]int64, error) {
	if v, ok := any(b.data).([]int64); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not int64", b.kind)
}

// Float32s implements View.Float32s.
func (b *Buffer[N]) Float32s() ([]float32, error) {
	if v, ok := any(b.data).([]float32); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not float32", b.kind)
}

// Float64s implements View.Float64s.
func (b *Buffer[N]) Float64s() ([]float64, error) {
	if v, ok := any(b.data).([]float64); ok {
		return v, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedReinterpret, "view holds %s, not float64", b.kind)
}

// Equal implements View.Equal. Elements compare by bit pattern, so NaN
// equals NaN and the relation stays consistent with Hash.
func (b *Buffer[N]) Equal(o View) bool {
	ob, ok := o.(*Buffer[N])
	if !ok {
		return false
	}
	if b.size != ob.size {
		return false
	}
	for i := range b.data {
		if bitsOf(b.data[i]) != bitsOf(ob.data[i]) {
			return false
		}
	}
	return true
}

// hashMult is the fold multiplier. It is part of the observable contract:
// equal views must produce equal hashes.
const hashMult = 31

// Hash implements View.Hash.
func (b *Buffer[N]) Hash() uint64 {
	h := uint64(b.kind)
	for _, v := range b.data {
		h = h*hashMult + bitsOf(v)
	}
	return h
}

// MemviewInternal implements the pragma guard that closes the View hierarchy.
func (b *Buffer[N]) MemviewInternal(pragma.DoNotImplement) {}
