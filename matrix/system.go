// SPDX-License-Identifier: MIT

// Package matrix - augmented System storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the n×(n+1) augmented matrix in one flat buffer with offset i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked hot-path readers (Coeff, RHS, Diag) for the solver sweeps.
//
// Complexity quicksheet:
//   - NewSystem: O(n²) zero-init; At/Set: O(1); Clone: O(n²); String: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRows = "NewSystemFromRows"
	ctxRow  = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// systemErrorf wraps err with the System method and the offending coordinates.
// The sentinel is preserved via %w.
func systemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("System.%s(%d,%d): %w", method, row, col, err)
}

// System is an augmented linear system [A | b] with n equations.
//   - n is the number of unknowns (and rows).
//   - cols is always n+1; column n holds the right-hand side.
//   - data is a flat buffer of length n*cols in row-major order.
type System struct {
	n    int
	cols int
	data []float64
}

var _ fmt.Stringer = (*System)(nil)

// NewSystem creates an n-unknown system with every coefficient and constant
// set to zero.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSystem(n int) (*System, error) {
	if n < 1 {
		return nil, ErrInvalidDimensions
	}
	cols := n + 1

	return &System{n: n, cols: cols, data: make([]float64, n*cols)}, nil
}

// NewSystemFromRows copies rows into a fresh System.
// Stage 1 (Validate): ValidateRows enforces n ≥ 1, len(row) == n+1, finite values.
// Stage 2 (Execute): copy row by row into the flat buffer.
// The caller keeps ownership of rows; later changes to it do not leak in.
func NewSystemFromRows(rows [][]float64) (*System, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	s, err := NewSystem(len(rows))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	for i, row := range rows {
		copy(s.data[i*s.cols:(i+1)*s.cols], row)
	}

	return s, nil
}

// N returns the number of unknowns.
func (s *System) N() int { return s.n }

// Cols returns the number of stored columns (always N()+1).
func (s *System) Cols() int { return s.cols }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (s *System) indexOf(row, col int) (int, error) {
	if row < 0 || row >= s.n || col < 0 || col >= s.cols {
		return 0, ErrOutOfRange
	}

	return row*s.cols + col, nil
}

// At returns the element at (row, col) of the augmented matrix.
// Column N() addresses the right-hand side.
func (s *System) At(row, col int) (float64, error) {
	off, err := s.indexOf(row, col)
	if err != nil {
		return 0, systemErrorf(ctxAt, row, col, err)
	}

	return s.data[off], nil
}

// Set stores v at (row, col). Non-finite values are rejected with ErrNaNInf.
func (s *System) Set(row, col int, v float64) error {
	off, err := s.indexOf(row, col)
	if err != nil {
		return systemErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return systemErrorf(ctxSet, row, col, ErrNaNInf)
	}
	s.data[off] = v

	return nil
}

// Coeff returns A[i][j] without bounds checks beyond the slice's own.
// Intended for solver inner loops where i, j < N() is already guaranteed.
func (s *System) Coeff(i, j int) float64 { return s.data[i*s.cols+j] }

// RHS returns b[i], the constant of equation i.
func (s *System) RHS(i int) float64 { return s.data[i*s.cols+s.n] }

// Diag returns the diagonal coefficient A[i][i].
func (s *System) Diag(i int) float64 { return s.data[i*s.cols+i] }

// Row returns a copy of row i (n coefficients followed by the constant).
func (s *System) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.n {
		return nil, systemErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, s.cols)
	copy(out, s.data[i*s.cols:(i+1)*s.cols])

	return out, nil
}

// Rows returns a deep copy of the augmented matrix as a slice of rows.
func (s *System) Rows() [][]float64 {
	out := make([][]float64, s.n)
	for i := range out {
		out[i] = make([]float64, s.cols)
		copy(out[i], s.data[i*s.cols:(i+1)*s.cols])
	}

	return out
}

// Split separates the augmented matrix into the row-major n×n coefficient
// block and the right-hand side vector. Both slices are fresh copies.
func (s *System) Split() (a, b []float64) {
	a = make([]float64, s.n*s.n)
	b = make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		copy(a[i*s.n:(i+1)*s.n], s.data[i*s.cols:i*s.cols+s.n])
		b[i] = s.data[i*s.cols+s.n]
	}

	return a, b
}

// Clone returns a deep copy of the system.
func (s *System) Clone() *System {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &System{n: s.n, cols: s.cols, data: cp}
}

// String renders one bracketed, comma-separated row per line.
func (s *System) String() string {
	var sb strings.Builder
	for i := 0; i < s.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < s.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(s.data[i*s.cols+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
