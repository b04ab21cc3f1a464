package memview

import "github.com/pkg/errors"

// Sentinel errors returned by views and factories. Failures are wrapped with
// context; callers match with errors.Is. No operation retries or recovers,
// every failure is surfaced to the immediate caller.
var (
	// ErrIndexOutOfRange indicates a positional read or write outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownDataType indicates a factory received a tag code outside the
	// supported set. The factory never falls back to a default kind.
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrUnsupportedReinterpret indicates a raw buffer was requested for a
	// kind that does not match the view's concrete kind.
	ErrUnsupportedReinterpret = errors.New("unsupported reinterpretation")

	// ErrTypeMismatch indicates a value of the wrong kind was supplied to a
	// dynamic write or conversion.
	ErrTypeMismatch = errors.New("type mismatch")
)
