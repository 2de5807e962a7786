// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the random producer.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/slae/matrix"
	"github.com/stretchr/testify/require"
)

func TestGenerateDomain(t *testing.T) {
	t.Parallel()

	s, err := matrix.Generate(8, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, 8, s.N())

	for _, row := range s.Rows() {
		require.Len(t, row, 9)
		for _, v := range row {
			require.GreaterOrEqual(t, v, matrix.GenMin)
			require.LessOrEqual(t, v, matrix.GenMax)
			// two decimals: v*100 is (numerically) an integer
			require.InDelta(t, math.Round(v*100), v*100, 1e-6)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := matrix.Generate(4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := matrix.Generate(4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	c, err := matrix.Generate(4, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	require.NotEqual(t, a.Rows(), c.Rows())
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Generate(0, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Generate(3, nil)
	require.ErrorIs(t, err, matrix.ErrNilRand)
}
