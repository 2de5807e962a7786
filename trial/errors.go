// SPDX-License-Identifier: MIT

package trial

import "errors"

var (
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("trial: trial count must be >= 1")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("trial: worker count must be >= 1")

	// ErrNilSource indicates that Run was called without a Source.
	ErrNilSource = errors.New("trial: nil source")

	// ErrNothingToPlot indicates that no method converged, so a histogram of
	// converged sweep counts would be empty.
	ErrNothingToPlot = errors.New("trial: no converged trials to plot")
)
