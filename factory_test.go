package memview

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pkg/errors"

	"github.com/arraykit/memview/dtype"
)

func TestAllocate(t *testing.T) {
	for _, dt := range dtype.Types {
		v, err := Allocate(4, dt)
		if err != nil {
			t.Errorf("TestAllocate(%s): unexpected error: %s", dt, err)
			continue
		}
		if v.DataType() != dt {
			t.Errorf("TestAllocate(%s): kind got %s", dt, v.DataType())
		}
		if v.Len() != 4 {
			t.Errorf("TestAllocate(%s): Len() got %d, want 4", dt, v.Len())
		}
		zero, err := Allocate(4, dt)
		if err != nil {
			t.Errorf("TestAllocate(%s): unexpected error: %s", dt, err)
			continue
		}
		if !v.Equal(zero) {
			t.Errorf("TestAllocate(%s): fresh allocation is not zero valued", dt)
		}
		for i := 0; i < v.Len(); i++ {
			s, err := v.Get(i)
			if err != nil {
				t.Fatalf("TestAllocate(%s): unexpected error: %s", dt, err)
			}
			if dt.IsFloat() {
				if s.Float64() != 0 {
					t.Errorf("TestAllocate(%s): element %d got %v, want 0", dt, i, s.Float64())
				}
			} else if s.Int64() != 0 {
				t.Errorf("TestAllocate(%s): element %d got %v, want 0", dt, i, s.Int64())
			}
		}
	}
}

func TestAllocateNegativeSize(t *testing.T) {
	if v, err := Allocate(-1, dtype.Int32); err == nil {
		t.Fatalf("TestAllocateNegativeSize: got %v, want error", v)
	}
}

func TestFactoryUnknownTag(t *testing.T) {
	tests := []struct {
		desc string
		dt   dtype.Type
	}{
		{desc: "zero code", dt: dtype.Unknown},
		{desc: "one past the set", dt: dtype.Type(7)},
		{desc: "max code", dt: dtype.Type(255)},
	}

	for _, test := range tests {
		if v, err := Allocate(3, test.dt); !errors.Is(err, ErrUnknownDataType) || v != nil {
			t.Errorf("TestFactoryUnknownTag(Allocate %s): got (%v, %v), want ErrUnknownDataType", test.desc, v, err)
		}
		if v, err := AllocateFunc(3, test.dt, func(int) Scalar { return ScalarOf(int32(0)) }); !errors.Is(err, ErrUnknownDataType) || v != nil {
			t.Errorf("TestFactoryUnknownTag(AllocateFunc %s): got (%v, %v), want ErrUnknownDataType", test.desc, v, err)
		}
		if v, err := FromSlice([]int32{1}, test.dt); !errors.Is(err, ErrUnknownDataType) || v != nil {
			t.Errorf("TestFactoryUnknownTag(FromSlice %s): got (%v, %v), want ErrUnknownDataType", test.desc, v, err)
		}
	}
}

func TestAllocateFunc(t *testing.T) {
	v, err := AllocateFunc(10, dtype.Int32, func(i int) Scalar { return ScalarOf(int32(i % 7)) })
	if err != nil {
		t.Fatalf("TestAllocateFunc: unexpected error: %s", err)
	}
	for i := 0; i < v.Len(); i++ {
		s, err := v.Get(i)
		if err != nil {
			t.Fatalf("TestAllocateFunc: unexpected error: %s", err)
		}
		if want := int64(i % 7); s.Int64() != want {
			t.Errorf("TestAllocateFunc(index %d): got %d, want %d", i, s.Int64(), want)
		}
	}
}

func TestAllocateFuncEvaluationOrder(t *testing.T) {
	calls := []int{}
	_, err := AllocateFunc(5, dtype.Int8, func(i int) Scalar {
		calls = append(calls, i)
		return ScalarOf(int8(i))
	})
	if err != nil {
		t.Fatalf("TestAllocateFuncEvaluationOrder: unexpected error: %s", err)
	}
	if diff := pretty.Compare([]int{0, 1, 2, 3, 4}, calls); diff != "" {
		t.Fatalf("TestAllocateFuncEvaluationOrder: -want/+got:\n%s", diff)
	}
}

func TestAllocateFuncKindMismatch(t *testing.T) {
	v, err := AllocateFunc(3, dtype.Int32, func(i int) Scalar { return ScalarOf(float64(i)) })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("TestAllocateFuncKindMismatch: got (%v, %v), want ErrTypeMismatch", v, err)
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		desc   string
		values any
		dt     dtype.Type
		err    bool
	}{
		{desc: "int8", values: []int8{1, 2, 3}, dt: dtype.Int8},
		{desc: "int16", values: []int16{1, 2, 3}, dt: dtype.Int16},
		{desc: "int32", values: []int32{1, 2, 3}, dt: dtype.Int32},
		{desc: "int64", values: []int64{1, 2, 3}, dt: dtype.Int64},
		{desc: "float32", values: []float32{1, 2, 3}, dt: dtype.Float32},
		{desc: "float64", values: []float64{1, 2, 3}, dt: dtype.Float64},
		{desc: "kind mismatch", values: []int64{1, 2, 3}, dt: dtype.Int32, err: true},
		{desc: "not a slice", values: 42, dt: dtype.Int32, err: true},
	}

	for _, test := range tests {
		v, err := FromSlice(test.values, test.dt)
		switch {
		case err == nil && test.err:
			t.Errorf("TestFromSlice(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestFromSlice(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			if !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("TestFromSlice(%s): got %v, want ErrTypeMismatch", test.desc, err)
			}
			continue
		}

		if v.DataType() != test.dt {
			t.Errorf("TestFromSlice(%s): kind got %s, want %s", test.desc, v.DataType(), test.dt)
		}
		if v.Len() != 3 {
			t.Errorf("TestFromSlice(%s): Len() got %d, want 3", test.desc, v.Len())
		}
		for i := 0; i < v.Len(); i++ {
			s, err := v.Get(i)
			if err != nil {
				t.Fatalf("TestFromSlice(%s): unexpected error: %s", test.desc, err)
			}
			var got int64
			if test.dt.IsFloat() {
				got = int64(s.Float64())
			} else {
				got = s.Int64()
			}
			if got != int64(i+1) {
				t.Errorf("TestFromSlice(%s): element %d got %d, want %d", test.desc, i, got, i+1)
			}
		}
	}
}

func TestFromSliceDoesNotAlias(t *testing.T) {
	source := []int32{1, 2, 3}
	v, err := FromSlice(source, dtype.Int32)
	if err != nil {
		t.Fatalf("TestFromSliceDoesNotAlias: unexpected error: %s", err)
	}

	source[0] = 50
	s, err := v.Get(0)
	if err != nil {
		t.Fatalf("TestFromSliceDoesNotAlias: unexpected error: %s", err)
	}
	if s.Int64() != 1 {
		t.Fatalf("TestFromSliceDoesNotAlias: view aliases the caller's slice, got %d, want 1", s.Int64())
	}
}

// TestStorageScenario walks the typical construct/read/copy/mutate sequence
// an array layer performs.
func TestStorageScenario(t *testing.T) {
	v, err := AllocateFunc(3, dtype.Int32, func(i int) Scalar { return ScalarOf(int32(i * i)) })
	if err != nil {
		t.Fatalf("TestStorageScenario(allocate): unexpected error: %s", err)
	}

	s, err := v.Get(2)
	if err != nil {
		t.Fatalf("TestStorageScenario(get): unexpected error: %s", err)
	}
	if s.Int64() != 4 {
		t.Fatalf("TestStorageScenario(get): got %d, want 4", s.Int64())
	}

	cp := v.CopyOf()
	if err := cp.Set(0, ScalarOf(int32(99))); err != nil {
		t.Fatalf("TestStorageScenario(set copy): unexpected error: %s", err)
	}
	s, err = v.Get(0)
	if err != nil {
		t.Fatalf("TestStorageScenario(get original): unexpected error: %s", err)
	}
	if s.Int64() != 0 {
		t.Fatalf("TestStorageScenario(get original): got %d, want 0", s.Int64())
	}

	seq, err := FromSlice([]int32{1, 2, 3}, dtype.Int32)
	if err != nil {
		t.Fatalf("TestStorageScenario(from slice): unexpected error: %s", err)
	}
	if seq.Len() != 3 {
		t.Fatalf("TestStorageScenario(from slice): Len() got %d, want 3", seq.Len())
	}
}
