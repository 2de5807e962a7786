// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the augmented System container.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/slae/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSystem(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.N())
	require.Equal(t, 4, s.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := s.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}

	for _, n := range []int{0, -1} {
		_, err := matrix.NewSystem(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewSystemFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"1x1", [][]float64{{2, 4}}, nil},
		{"2x2", [][]float64{{4, 1, 5}, {2, 3, 7}}, nil},
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"short row", [][]float64{{4, 1, 5}, {2, 3}}, matrix.ErrDimensionMismatch},
		{"square without rhs", [][]float64{{4, 1}, {2, 3}}, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{math.NaN(), 1}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{1, math.Inf(-1)}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := matrix.NewSystemFromRows(tc.rows)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, s.Rows())
		})
	}
}

func TestSystemAccessors(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{4, 1, 5}, {2, 3, 7}}
	s, err := matrix.NewSystemFromRows(rows)
	require.NoError(t, err)

	// caller's slice is copied, not aliased
	rows[0][0] = 100
	require.Equal(t, 4.0, s.Diag(0))

	require.Equal(t, 3.0, s.Diag(1))
	require.Equal(t, 1.0, s.Coeff(0, 1))
	require.Equal(t, 5.0, s.RHS(0))
	require.Equal(t, 7.0, s.RHS(1))

	row, err := s.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 7}, row)
	row[0] = -1
	require.Equal(t, 2.0, s.Coeff(1, 0))

	_, err = s.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	a, b := s.Split()
	require.Equal(t, []float64{4, 1, 2, 3}, a)
	require.Equal(t, []float64{5, 7}, b)
}

func TestSystemAtSet(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSystem(2)
	require.NoError(t, err)

	require.NoError(t, s.Set(1, 2, 9.5))
	v, err := s.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.5, v)
	require.Equal(t, 9.5, s.RHS(1))

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = s.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, s.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, s.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, s.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestSystemCloneIsIndependent(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSystemFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	c := s.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	require.Equal(t, 1.0, s.Diag(0))
	require.Equal(t, 42.0, c.Diag(0))
}

func TestSystemString(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSystemFromRows([][]float64{{4, 1, 5}, {2, 3.25, -7}})
	require.NoError(t, err)
	require.Equal(t, "[4, 1, 5]\n[2, 3.25, -7]\n", s.String())
}
