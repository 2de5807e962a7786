// SPDX-License-Identifier: MIT

// Package matrix holds the augmented linear system consumed by the iterative
// solvers, together with its producers and validators.
//
// The package provides:
//
//   - System: an n×(n+1) augmented matrix (coefficients plus one right-hand
//     side column) stored row-major in a single flat slice.
//   - Parse / ReadFile: the plain-text reader (one row per line,
//     whitespace-separated reals). ReadFile memory-maps the file read-only.
//   - Generate: the random producer (values uniform in [-10.00, 10.99],
//     rounded to two decimals).
//   - Validators and sentinel errors shared by the solver and trial packages.
//
// A System is never mutated by the solvers. Diagonal entries are not checked
// at construction time; a zero pivot is a solve-time outcome.
//
// Quick example:
//
//	sys, err := matrix.NewSystemFromRows([][]float64{
//		{4, 1, 5},
//		{2, 3, 7},
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Print(sys) // [4, 1, 5]\n[2, 3, 7]\n
package matrix
