// Package pragma provides types that can be embedded to enforce compile time
// properties on the package's exported types.
package pragma

// DoNotImplement can be embedded in an interface to signal that the set of
// implementations is closed. Types outside this module cannot satisfy the
// interface, so every implementation is known at compile time.
type DoNotImplement interface {
	MemviewInternal(DoNotImplement)
}
