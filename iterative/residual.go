// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"github.com/katalvlaran/slae/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Residual returns ‖A·x − b‖∞ for the augmented system sys.
// The max-norm change used by Solve only says the iteration stalled; the
// residual says how well x actually satisfies the equations.
//
// Errors:
//   - ErrNilSystem, ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the coefficient copy.
func Residual(sys *matrix.System, x []float64) (float64, error) {
	if err := matrix.ValidateNotNil(sys); err != nil {
		return 0, err
	}
	n := sys.N()
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return 0, err
	}

	coeffs, b := sys.Split()
	a := mat.NewDense(n, n, coeffs)
	xv := mat.NewVecDense(n, append([]float64(nil), x...))

	var ax mat.VecDense
	ax.MulVec(a, xv)

	r := make([]float64, n)
	floats.SubTo(r, ax.RawVector().Data, b)

	return floats.Norm(r, math.Inf(1)), nil
}
