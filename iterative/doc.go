// SPDX-License-Identifier: MIT

// Package iterative implements the two classical stationary methods for
// Ax = b, Jacobi and Gauss-Seidel, as a single sweep/decision loop.
//
// The methods differ only in which iterate a sweep reads while computing the
// correction for equation i:
//
//   - Jacobi reads the whole previous iterate x_prev.
//   - Gauss-Seidel reads x in place, so indices j < i already hold values
//     from the current sweep and j > i still hold the previous ones.
//
// Per sweep (iterations count from 1):
//
//  1. Snapshot x into x_prev (used for the error measure in both methods).
//  2. For i = 0..n-1: abort with ReasonZeroPivot if A[i][i] == 0; otherwise
//     x[i] = (b[i] - Σ_{j≠i} A[i][j]·x_j) / A[i][i] and track the max-norm
//     change max_i |x[i] - x_prev[i]|.
//  3. Converged when the change is ≤ Epsilon; stop unconverged when the sweep
//     count reached MaxIter or the change is ≥ ErrorEps; otherwise sweep again.
//
// Zero pivots and non-convergence are outcomes, not errors: the returned
// Outcome carries Converged=false and a Reason telling them apart. Errors are
// reserved for contract violations (nil system, wrong guess length).
//
// Tunables are passed as options (WithEpsilon, WithMaxIter, WithErrorEps);
// the defaults are 0.01 / 10000 / 10000.0.
package iterative
