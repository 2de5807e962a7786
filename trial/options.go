// SPDX-License-Identifier: MIT

package trial

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/slae/iterative"
	"github.com/katalvlaran/slae/matrix"
)

// Defaults.
const (
	// DefaultTrials is the number of trials when WithTrials is not given.
	DefaultTrials = 1

	// DefaultWorkers runs trials sequentially.
	DefaultWorkers = 1
)

// Option configures a Runner.
type Option func(*Options)

// Options is the effective Runner configuration.
type Options struct {
	Trials         int
	Workers        int
	SolverOptions  []iterative.Option
	CheckResiduals bool
	Progress       func(done, total int)
	OnSystem       func(trial int, sys *matrix.System)
	Logger         *slog.Logger
}

func defaultOptions() Options {
	return Options{
		Trials:  DefaultTrials,
		Workers: DefaultWorkers,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTrials sets the number of trials N. Values below 1 make NewRunner fail
// with ErrInvalidTrials.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithWorkers sets the number of solving goroutines. Values below 1 make
// NewRunner fail with ErrInvalidWorkers.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithSolverOptions forwards options (tolerance, caps, logger) to every solve.
func WithSolverOptions(opts ...iterative.Option) Option {
	return func(o *Options) { o.SolverOptions = append(o.SolverOptions, opts...) }
}

// WithResidualCheck records the worst residual of converged outcomes in
// Stats.MaxResidual. Costs one O(n²) product per converged solve.
func WithResidualCheck() Option {
	return func(o *Options) { o.CheckResiduals = true }
}

// WithProgress installs a callback invoked after every finished trial.
// Calls are serialized; done grows from 1 to total.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithSystemHook installs a callback that sees every system (1-based trial
// number) before it is solved. Calls come from the producing goroutine, in
// trial order.
func WithSystemHook(fn func(trial int, sys *matrix.System)) Option {
	return func(o *Options) { o.OnSystem = fn }
}

// WithLogger routes run-level logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
