// Package value: sentinel error set.
//
// Every algorithm in this package returns these sentinels (never panics on
// a user-triggered condition); tests check them via errors.Is. Message
// prefix is uniformly "value: ..." for grepability.
package value

import "errors"

var (
	// ErrDimensionMismatch is returned when two vectors passed to apply/dot
	// have different lengths, or two matrices passed to matmul have
	// incompatible shapes.
	ErrDimensionMismatch = errors.New("value: dimension mismatch")

	// ErrEmptyVector is returned by Reduce on a zero-length vector.
	ErrEmptyVector = errors.New("value: reduce of empty vector")

	// ErrIndexOutOfRange is returned by Elem/Row/Col when the requested
	// index is outside the value's bounds.
	ErrIndexOutOfRange = errors.New("value: index out of range")

	// ErrRaggedMatrix is returned when constructing a Matrix from rows of
	// unequal length.
	ErrRaggedMatrix = errors.New("value: matrix rows have unequal length")

	// ErrEmptyMatrix is returned when constructing a Matrix with zero rows.
	ErrEmptyMatrix = errors.New("value: matrix has no rows")
)
