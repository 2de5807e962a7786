// SPDX-License-Identifier: MIT

// Package iterative: functional configuration for the solvers.
//
// Defaults are the single source of truth for zero-value behavior. Option
// constructors panic only on nonsensical values (programmer error); solving
// itself never panics.

package iterative

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults ----------

const (
	// DefaultEpsilon is the convergence tolerance on the max-norm change.
	DefaultEpsilon = 0.01

	// DefaultMaxIter caps the number of sweeps per solve.
	DefaultMaxIter = 10_000

	// DefaultErrorEps is the divergence guard on the max-norm change.
	DefaultErrorEps = 10_000.0
)

// Option mutates solver Options.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	Epsilon  float64
	MaxIter  int
	ErrorEps float64
	Logger   *slog.Logger
}

// discardLogger drops every record; used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:  DefaultEpsilon,
		MaxIter:  DefaultMaxIter,
		ErrorEps: DefaultErrorEps,
		Logger:   discardLogger,
	}
}

// gatherOptions applies opts in order over the defaults (later wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the convergence tolerance. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIter sets the sweep cap. Panics when maxIter < 1.
func WithMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIter = maxIter }
}

// WithErrorEps sets the divergence threshold. Panics unless errorEps is finite and > 0.
func WithErrorEps(errorEps float64) Option {
	if math.IsNaN(errorEps) || math.IsInf(errorEps, 0) || errorEps <= 0 {
		panic(panicErrorEpsInvalid)
	}

	return func(o *Options) { o.ErrorEps = errorEps }
}

// WithLogger routes solver diagnostics (zero pivot, divergence) to l.
// A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
