// Package vecops bridges float64 memory views to vectorized block kernels.
// It sits on the consumer side of the view reinterpret escape hatch: every
// operation retrieves the raw float64 buffer from a view and hands it to a
// SIMD kernel whole, with no per-element dispatch. Views of any other kind
// fail with memview.ErrUnsupportedReinterpret.
package vecops

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/pkg/errors"

	"github.com/arraykit/memview"
)

// ErrLengthMismatch indicates the operand views have different lengths.
var ErrLengthMismatch = errors.New("views have different lengths")

// AddInPlace adds src into dst elementwise: dst[i] += src[i].
func AddInPlace(dst memview.MemoryView, src memview.View) error {
	d, s, err := operands(dst, src)
	if err != nil {
		return err
	}
	vecmath.AddBlockInPlace(d, s)
	return nil
}

// MulInPlace multiplies dst by src elementwise: dst[i] *= src[i].
func MulInPlace(dst memview.MemoryView, src memview.View) error {
	d, s, err := operands(dst, src)
	if err != nil {
		return err
	}
	vecmath.MulBlockInPlace(d, s)
	return nil
}

// Mul writes the elementwise product of a and b into dst: dst[i] = a[i]*b[i].
func Mul(dst memview.MemoryView, a, b memview.View) error {
	d, x, err := operands(dst, a)
	if err != nil {
		return err
	}
	y, err := b.Float64s()
	if err != nil {
		return err
	}
	if len(d) != len(y) {
		return errors.Wrapf(ErrLengthMismatch, "dst has %d elements, b has %d", len(d), len(y))
	}
	vecmath.MulBlock(d, x, y)
	return nil
}

// Scale writes src scaled by factor into dst: dst[i] = src[i] * factor.
func Scale(dst memview.MemoryView, src memview.View, factor float64) error {
	d, s, err := operands(dst, src)
	if err != nil {
		return err
	}
	vecmath.ScaleBlock(d, s, factor)
	return nil
}

// operands unwraps the raw float64 buffers of dst and src and checks that
// the lengths line up.
func operands(dst memview.MemoryView, src memview.View) ([]float64, []float64, error) {
	d, err := dst.Float64s()
	if err != nil {
		return nil, nil, err
	}
	s, err := src.Float64s()
	if err != nil {
		return nil, nil, err
	}
	if len(d) != len(s) {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "dst has %d elements, src has %d", len(d), len(s))
	}
	return d, s, nil
}
