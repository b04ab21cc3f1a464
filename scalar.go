package memview

import (
	"fmt"
	"math"

	"github.com/arraykit/memview/dtype"
)

// Scalar is a single element tagged with its logical kind. It is a two word
// value, so element access through the dynamic contracts never allocates.
type Scalar struct {
	t    dtype.Type
	bits uint64
}

// ScalarOf wraps a primitive value in a Scalar.
func ScalarOf[N Element](v N) Scalar {
	return Scalar{t: KindOf[N](), bits: bitsOf(v)}
}

// Type returns the logical kind of the value.
func (s Scalar) Type() dtype.Type {
	return s.t
}

// Int64 returns the value widened to int64. If the kind is not an integer
// kind, this will panic.
func (s Scalar) Int64() int64 {
	switch s.t {
	case dtype.Int8:
		return int64(int8(s.bits))
	case dtype.Int16:
		return int64(int16(s.bits))
	case dtype.Int32:
		return int64(int32(s.bits))
	case dtype.Int64:
		return int64(s.bits)
	}
	panic("Scalar is not an integer kind, was " + s.t.String())
}

// Float64 returns the value widened to float64. If the kind is not a float
// kind, this will panic.
func (s Scalar) Float64() float64 {
	switch s.t {
	case dtype.Float32:
		return float64(math.Float32frombits(uint32(s.bits)))
	case dtype.Float64:
		return math.Float64frombits(s.bits)
	}
	panic("Scalar is not a float kind, was " + s.t.String())
}

// Any returns the value as its Go type, or nil for an invalid Scalar.
func (s Scalar) Any() any {
	switch s.t {
	case dtype.Int8:
		return int8(s.bits)
	case dtype.Int16:
		return int16(s.bits)
	case dtype.Int32:
		return int32(s.bits)
	case dtype.Int64:
		return int64(s.bits)
	case dtype.Float32:
		return math.Float32frombits(uint32(s.bits))
	case dtype.Float64:
		return math.Float64frombits(s.bits)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Scalar) String() string {
	if !s.t.Valid() {
		return "<invalid Scalar>"
	}
	return fmt.Sprint(s.Any())
}

// bitsOf returns the canonical 64 bit payload for v. Integers sign extend,
// floats store their IEEE 754 bit pattern.
func bitsOf[N Element](v N) uint64 {
	switch v := any(v).(type) {
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic(fmt.Sprintf("unsupported element type %T", v))
}

// scalarValue converts s back to the primitive kind N. The caller must have
// already checked that s carries N's kind.
func scalarValue[N Element](s Scalar) N {
	switch s.t {
	case dtype.Int8:
		return N(int8(s.bits))
	case dtype.Int16:
		return N(int16(s.bits))
	case dtype.Int32:
		return N(int32(s.bits))
	case dtype.Int64:
		return N(int64(s.bits))
	case dtype.Float32:
		return N(math.Float32frombits(uint32(s.bits)))
	case dtype.Float64:
		return N(math.Float64frombits(s.bits))
	}
	panic("unsupported kind: " + s.t.String())
}
