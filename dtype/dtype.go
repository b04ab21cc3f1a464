// Package dtype describes the logical numeric kinds a memory view can hold.
package dtype

//go:generate stringer -type=Type -linecomment

// Type represents the logical kind of the primitive elements in a buffer.
// The integer codes are stable and used for runtime factory dispatch.
type Type uint8

const (
	Unknown Type = 0 // Unknown
	Int8    Type = 1 // int8
	Int16   Type = 2 // int16
	Int32   Type = 3 // int32
	Int64   Type = 4 // int64
	Float32 Type = 5 // float32
	Float64 Type = 6 // float64
)

// Types is the ordered list of supported kinds.
var Types = []Type{
	Int8,
	Int16,
	Int32,
	Int64,
	Float32,
	Float64,
}

// Valid reports whether t is one of the supported kinds.
func (t Type) Valid() bool {
	return t >= Int8 && t <= Float64
}

// Size returns the width in bytes of a single element of kind t.
// It panics if t is not a supported kind.
func (t Type) Size() int {
	switch t {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	}
	panic("unsupported type: " + t.String())
}

// IsFloat reports whether t is a floating point kind.
func (t Type) IsFloat() bool {
	return t == Float32 || t == Float64
}
