// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, readers and validators return these sentinels (possibly
// wrapped with call-site context via %w); callers match them with errors.Is.
// Nothing in this package panics on user-supplied data.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so it can be grepped in logs.
var (
	// ErrInvalidDimensions indicates a non-positive number of unknowns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. a row whose
	// length is not n+1 or a guess vector whose length is not n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilSystem indicates that a nil *System (receiver or argument) was used.
	ErrNilSystem = errors.New("matrix: nil system")

	// ErrNilVector indicates that a nil vector was passed where one is required.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNilRand indicates that Generate was called without a random source.
	ErrNilRand = errors.New("matrix: nil random source")

	// ErrMalformedInput marks a matrix file or stream that cannot be turned
	// into a square augmented system: non-numeric token, wrong column count,
	// wrong row count, or no data at all.
	ErrMalformedInput = errors.New("matrix: malformed input")
)
