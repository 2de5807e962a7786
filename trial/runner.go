// SPDX-License-Identifier: MIT

package trial

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/slae/iterative"
	"github.com/katalvlaran/slae/matrix"
	"golang.org/x/sync/errgroup"
)

// Runner executes trials with a fixed configuration. It is safe to call Run
// repeatedly; each call starts from empty statistics.
type Runner struct {
	opts Options
}

// NewRunner validates opts and returns a Runner.
//
// Errors:
//   - ErrInvalidTrials when the trial count is below 1.
//   - ErrInvalidWorkers when the worker count is below 1.
func NewRunner(opts ...Option) (*Runner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Trials < 1 {
		return nil, fmt.Errorf("NewRunner: trials=%d: %w", o.Trials, ErrInvalidTrials)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("NewRunner: workers=%d: %w", o.Workers, ErrInvalidWorkers)
	}

	return &Runner{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (r *Runner) Options() Options { return r.opts }

// Run executes the configured number of trials against src.
// A Source error (e.g. malformed input) aborts the run and is returned wrapped
// with the trial number; so is context cancellation.
func (r *Runner) Run(ctx context.Context, src Source) (Report, error) {
	if src == nil {
		return Report{}, ErrNilSource
	}
	report := newReport(r.opts.Trials, src.Dim(), probeEpsilon(r.opts.SolverOptions))

	start := time.Now()
	r.opts.Logger.Info("trial run started",
		slog.Int("trials", r.opts.Trials),
		slog.Int("unknowns", src.Dim()),
		slog.Int("workers", r.opts.Workers))

	var err error
	if r.opts.Workers == 1 {
		err = r.runSequential(ctx, src, &report)
	} else {
		err = r.runParallel(ctx, src, &report)
	}
	if err != nil {
		return Report{}, err
	}

	r.opts.Logger.Info("trial run finished",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("jacobi_converged", report.Jacobi.Successes),
		slog.Int("gauss_seidel_converged", report.GaussSeidel.Successes))

	return report, nil
}

// probeEpsilon resolves the tolerance the solver options will apply.
func probeEpsilon(opts []iterative.Option) float64 {
	o := iterative.DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o.Epsilon
}

// pair holds one trial's statistics for both methods.
type pair struct {
	gs, jacobi Stats
}

func newPair() pair {
	return pair{
		gs:     Stats{Method: iterative.MethodGaussSeidel},
		jacobi: Stats{Method: iterative.MethodJacobi},
	}
}

// solveTrial runs Gauss-Seidel then Jacobi on independent zero guesses and
// records both outcomes into p.
func (r *Runner) solveTrial(sys *matrix.System, p *pair) error {
	gs, err := iterative.GaussSeidel(sys, nil, r.opts.SolverOptions...)
	if err != nil {
		return err
	}
	jac, err := iterative.Jacobi(sys, nil, r.opts.SolverOptions...)
	if err != nil {
		return err
	}
	if r.opts.CheckResiduals {
		if err = trackResidual(sys, gs, &p.gs); err != nil {
			return err
		}
		if err = trackResidual(sys, jac, &p.jacobi); err != nil {
			return err
		}
	}
	p.gs.Record(gs)
	p.jacobi.Record(jac)

	return nil
}

func trackResidual(sys *matrix.System, o iterative.Outcome, s *Stats) error {
	if !o.Converged {
		return nil
	}
	res, err := iterative.Residual(sys, o.X)
	if err != nil {
		return err
	}
	if res > s.MaxResidual {
		s.MaxResidual = res
	}

	return nil
}

func (r *Runner) runSequential(ctx context.Context, src Source, report *Report) error {
	p := newPair()
	for t := 1; t <= r.opts.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		sys, err := src.Next(ctx)
		if err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		if r.opts.OnSystem != nil {
			r.opts.OnSystem(t, sys)
		}
		if err = r.solveTrial(sys, &p); err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		if r.opts.Progress != nil {
			r.opts.Progress(t, r.opts.Trials)
		}
	}
	report.GaussSeidel.Merge(p.gs)
	report.Jacobi.Merge(p.jacobi)

	return nil
}

// runParallel: one producer draws systems in trial order, Workers goroutines
// solve them into private pairs, the caller serializes progress and merges.
// The first failure cancels the group and is the error returned.
func (r *Runner) runParallel(parent context.Context, src Source, report *Report) error {
	g, ctx := errgroup.WithContext(parent)

	type job struct {
		trial int
		sys   *matrix.System
	}
	jobs := make(chan job)
	ticks := make(chan struct{}, r.opts.Workers)

	g.Go(func() error {
		defer close(jobs)
		for t := 1; t <= r.opts.Trials; t++ {
			sys, err := src.Next(ctx)
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			if r.opts.OnSystem != nil {
				r.opts.OnSystem(t, sys)
			}
			select {
			case jobs <- job{trial: t, sys: sys}:
			case <-ctx.Done():
				return fmt.Errorf("trial %d: %w", t, ctx.Err())
			}
		}

		return nil
	})

	partials := make([]pair, r.opts.Workers)
	for w := range partials {
		partials[w] = newPair()
		p := &partials[w]
		g.Go(func() error {
			for jb := range jobs {
				if err := r.solveTrial(jb.sys, p); err != nil {
					return fmt.Errorf("trial %d: %w", jb.trial, err)
				}
				select {
				case ticks <- struct{}{}:
				case <-ctx.Done():
					return fmt.Errorf("trial %d: %w", jb.trial, ctx.Err())
				}
			}

			return nil
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- g.Wait()
		close(ticks)
	}()

	done := 0
	for range ticks {
		done++
		if r.opts.Progress != nil {
			r.opts.Progress(done, r.opts.Trials)
		}
	}
	if err := <-waitErr; err != nil {
		return err
	}

	for _, p := range partials {
		report.GaussSeidel.Merge(p.gs)
		report.Jacobi.Merge(p.jacobi)
	}

	return nil
}
