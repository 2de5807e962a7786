// SPDX-License-Identifier: MIT

package iterative

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/slae/matrix"
)

// Jacobi solves sys with the Jacobi method. See Solve.
func Jacobi(sys *matrix.System, x0 []float64, opts ...Option) (Outcome, error) {
	return Solve(sys, x0, MethodJacobi, opts...)
}

// GaussSeidel solves sys with the Gauss-Seidel method. See Solve.
func GaussSeidel(sys *matrix.System, x0 []float64, opts ...Option) (Outcome, error) {
	return Solve(sys, x0, MethodGaussSeidel, opts...)
}

// Solve runs method on sys starting from x0 and returns the terminal Outcome.
//
// Inputs:
//   - sys: augmented system; read only, never mutated.
//   - x0 : initial guess of length sys.N(); nil means the zero vector.
//     x0 is copied, the caller's slice is not modified.
//
// Errors:
//   - ErrNilSystem, ErrNilVector/ErrDimensionMismatch (from matrix validators).
//   - ErrUnknownMethod for an invalid method value.
//
// A zero pivot, the sweep cap and the divergence guard all yield
// Converged=false with a nil error.
//
// Complexity:
//   - Time O(k·n²) for k sweeps, Space O(n).
func Solve(sys *matrix.System, x0 []float64, method Method, opts ...Option) (Outcome, error) {
	if !method.valid() {
		return Outcome{}, solverErrorf(method, ErrUnknownMethod)
	}
	if err := matrix.ValidateGuess(sys, x0); err != nil {
		return Outcome{}, solverErrorf(method, err)
	}
	o := gatherOptions(opts...)

	n := sys.N()
	x := make([]float64, n)
	copy(x, x0)
	prev := make([]float64, n)

	// read is the vector the correction consults; this is the only place the
	// two methods differ.
	read := x
	if method == MethodJacobi {
		read = prev
	}

	var (
		iters  int
		maxErr float64
		diff   float64
		e      float64
		i, j   int
	)
	for {
		iters++
		copy(prev, x)
		maxErr = 0

		for i = 0; i < n; i++ {
			d := sys.Diag(i)
			if d == 0 {
				o.Logger.Debug("zero on the main diagonal",
					slog.String("method", method.String()),
					slog.Int("row", i),
					slog.Int("iteration", iters))

				return Outcome{
					Method:     method,
					Converged:  false,
					Iterations: iters,
					Reason:     ReasonZeroPivot,
					Pivot:      i,
					MaxError:   maxErr,
					X:          x,
				}, nil
			}

			diff = sys.RHS(i)
			for j = 0; j < n; j++ {
				if j != i {
					diff -= sys.Coeff(i, j) * read[j]
				}
			}
			x[i] = diff / d

			e = math.Abs(x[i] - prev[i])
			if math.IsNaN(e) {
				e = math.Inf(1)
			}
			if e > maxErr {
				maxErr = e
			}
		}

		if maxErr <= o.Epsilon {
			return finish(method, iters, ReasonConverged, maxErr, x), nil
		}
		if maxErr >= o.ErrorEps {
			o.Logger.Debug("divergence guard reached",
				slog.String("method", method.String()),
				slog.Int("iteration", iters),
				slog.Float64("max_error", maxErr))

			return finish(method, iters, ReasonDiverged, maxErr, x), nil
		}
		if iters >= o.MaxIter {
			o.Logger.Debug("iteration cap reached",
				slog.String("method", method.String()),
				slog.Int("iteration", iters),
				slog.Float64("max_error", maxErr))

			return finish(method, iters, ReasonIterationCap, maxErr, x), nil
		}
	}
}

// finish builds a non-pivot Outcome.
func finish(m Method, iters int, r Reason, maxErr float64, x []float64) Outcome {
	return Outcome{
		Method:     m,
		Converged:  r == ReasonConverged,
		Iterations: iters,
		Reason:     r,
		Pivot:      -1,
		MaxError:   maxErr,
		X:          x,
	}
}
