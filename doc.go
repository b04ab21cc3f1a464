// Package memview is the storage core underneath a multidimensional numeric
// array library. It provides a uniform abstraction over contiguous buffers
// of distinct primitive numeric kinds (int8 through int64, float32 and
// float64) so that shape logic, elementwise math and kernel dispatch can
// manipulate arrays without knowing at compile time which kind backs a given
// instance.
//
// There are two ways in:
//
//   - The typed path: construct a Buffer[N] directly with NewBuffer,
//     NewBufferFunc or BufferOf. Element kinds are enforced by the compiler
//     and access never boxes.
//
//   - The dynamic path: hold a dtype.Type tag at runtime and construct
//     through Allocate, AllocateFunc or FromSlice. The result is typed only
//     as MemoryView; access goes through Scalar values and the concrete kind
//     stays opaque until a caller reinterprets the buffer with one of the
//     six raw accessors (Int8s ... Float64s).
//
// Views do no shape reasoning, broadcasting or bulk arithmetic. They only
// own, index, copy and expose primitive buffers. Nothing here synchronizes:
// a single holder touched by multiple goroutines needs external exclusion.
package memview
