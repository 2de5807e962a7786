// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod is returned for a Method value (or name) that is neither
	// Jacobi nor Gauss-Seidel.
	ErrUnknownMethod = errors.New("iterative: unknown method")
)

// Panic messages of option constructors (programmer errors).
const (
	panicEpsilonInvalid  = "iterative: WithEpsilon: eps must be finite and > 0"
	panicMaxIterInvalid  = "iterative: WithMaxIter: maxIter must be >= 1"
	panicErrorEpsInvalid = "iterative: WithErrorEps: errorEps must be finite and > 0"
)

// solverErrorf tags err with the method that was running.
func solverErrorf(m Method, err error) error {
	return fmt.Errorf("%s: %w", m, err)
}
