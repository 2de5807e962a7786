// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the checks shared by constructors,
//    the solvers and the trial runner.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the system reference is non-nil.
// Returns ErrNilSystem if s == nil.
// Complexity: O(1).
func ValidateNotNil(s *System) error {
	if s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilSystem)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n entries.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateGuess is the solver-facing composite: NotNil(s) → VecLen(x, s.N()).
// A nil x is accepted and means "start from the zero vector".
func ValidateGuess(s *System, x []float64) error {
	if err := ValidateNotNil(s); err != nil {
		return err
	}
	if x == nil {
		return nil
	}

	return ValidateVecLen(x, s.n)
}

// ValidateRows checks that rows describe a square augmented system:
// at least one row, every row exactly len(rows)+1 wide, all values finite.
//
// Errors:
//   - ErrInvalidDimensions for zero rows.
//   - ErrDimensionMismatch for a row of the wrong width.
//   - ErrNaNInf for a non-finite entry.
//
// Complexity: O(n²).
func ValidateRows(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != n+1 {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d values, want %d", i, len(row), n+1), ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateRows: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// IsDiagonallyDominant reports whether |A[i][i]| > Σ_{j≠i} |A[i][j]| holds for
// every row. Nothing enforces dominance; this only lets tests and callers
// predict whether both methods are guaranteed to converge.
func IsDiagonallyDominant(s *System) (bool, error) {
	if err := ValidateNotNil(s); err != nil {
		return false, err
	}
	for i := 0; i < s.n; i++ {
		var off float64
		for j := 0; j < s.n; j++ {
			if j != i {
				off += math.Abs(s.Coeff(i, j))
			}
		}
		if math.Abs(s.Diag(i)) <= off {
			return false, nil
		}
	}

	return true, nil
}
