// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"strings"
)

// Method selects the update visibility of a sweep.
type Method int

const (
	// MethodJacobi reads only the previous iterate during a sweep.
	MethodJacobi Method = iota

	// MethodGaussSeidel reads the iterate in place, seeing this sweep's updates.
	MethodGaussSeidel
)

// Methods lists every supported method in report order.
var Methods = []Method{MethodJacobi, MethodGaussSeidel}

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodJacobi:
		return "jacobi"
	case MethodGaussSeidel:
		return "gauss-seidel"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

func (m Method) valid() bool {
	return m == MethodJacobi || m == MethodGaussSeidel
}

// ParseMethod maps a case-insensitive name ("jacobi", "gauss-seidel",
// "seidel", "gs") to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jacobi":
		return MethodJacobi, nil
	case "gauss-seidel", "gaussseidel", "seidel", "gs":
		return MethodGaussSeidel, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
	}
}

// Reason explains why a solve stopped.
type Reason int

const (
	// ReasonConverged: the max-norm change fell to Epsilon or below.
	ReasonConverged Reason = iota

	// ReasonZeroPivot: a diagonal coefficient was exactly zero.
	ReasonZeroPivot

	// ReasonIterationCap: MaxIter sweeps ran without converging.
	ReasonIterationCap

	// ReasonDiverged: the max-norm change reached ErrorEps (or became non-finite).
	ReasonDiverged
)

// String returns a short, log-friendly reason name.
func (r Reason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonZeroPivot:
		return "zero pivot"
	case ReasonIterationCap:
		return "iteration cap"
	case ReasonDiverged:
		return "diverged"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Outcome is the terminal state of one solve.
//   - Converged and Iterations are the (bool, int) pair consumed by statistics.
//   - Reason distinguishes a zero pivot from ordinary non-convergence.
//   - Pivot is the row of the zero diagonal for ReasonZeroPivot, else -1.
//   - MaxError is the max-norm change of the last (possibly partial) sweep.
//   - X is the final iterate; it belongs to the Outcome.
type Outcome struct {
	Method     Method
	Converged  bool
	Iterations int
	Reason     Reason
	Pivot      int
	MaxError   float64
	X          []float64
}
