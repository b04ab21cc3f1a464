package memview

import (
	"github.com/pkg/errors"

	"github.com/arraykit/memview/dtype"
)

// Allocate returns a zero-valued view of the given kind and length. A tag
// code outside the supported set fails with ErrUnknownDataType; the factory
// never falls back to a default kind.
func Allocate(size int, dt dtype.Type) (MemoryView, error) {
	if size < 0 {
		return nil, errors.Errorf("memview: size cannot be negative, got %d", size)
	}
	switch dt {
	case dtype.Int8:
		return NewBuffer[int8](size), nil
	case dtype.Int16:
		return NewBuffer[int16](size), nil
	case dtype.Int32:
		return NewBuffer[int32](size), nil
	case dtype.Int64:
		return NewBuffer[int64](size), nil
	case dtype.Float32:
		return NewBuffer[float32](size), nil
	case dtype.Float64:
		return NewBuffer[float64](size), nil
	}
	return nil, errors.Wrapf(ErrUnknownDataType, "%s", dt)
}

// AllocateFunc returns a view of the given kind where element i is gen(i).
// gen is invoked once per index, in ascending order, at construction only;
// reads never re-invoke it. A scalar whose kind does not match dt fails the
// whole call with ErrTypeMismatch.
func AllocateFunc(size int, dt dtype.Type, gen func(i int) Scalar) (MemoryView, error) {
	v, err := Allocate(size, dt)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if err := v.Set(i, gen(i)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// FromSlice returns a view of the given kind holding the slice's elements in
// their original order. values must be the []K matching dt: any other type
// fails with ErrTypeMismatch, it is never coerced. The elements are copied,
// so the view does not alias the caller's slice.
func FromSlice(values any, dt dtype.Type) (MemoryView, error) {
	switch dt {
	case dtype.Int8:
		return fromSlice[int8](values, dt)
	case dtype.Int16:
		return fromSlice[int16](values, dt)
	case dtype.Int32:
		return fromSlice[int32](values, dt)
	case dtype.Int64:
		return fromSlice[int64](values, dt)
	case dtype.Float32:
		return fromSlice[float32](values, dt)
	case dtype.Float64:
		return fromSlice[float64](values, dt)
	}
	return nil, errors.Wrapf(ErrUnknownDataType, "%s", dt)
}

func fromSlice[N Element](values any, dt dtype.Type) (MemoryView, error) {
	s, ok := values.([]N)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "%T cannot back a %s view", values, dt)
	}
	return BufferOf(s...), nil
}
