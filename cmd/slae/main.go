// SPDX-License-Identifier: MIT

// Command slae compares Jacobi and Gauss-Seidel convergence on random or
// file-supplied linear systems.
//
// Usage:
//
//	slae                                # interactive: asks for file, dimension, trials
//	slae -n 5 --trials 1000             # 1000 random 5×5 systems
//	slae --file system.txt              # one solve of a file-loaded system
//	slae -n 4 -t 500 -w 8 --plot hist.png
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/katalvlaran/slae/iterative"
	"github.com/katalvlaran/slae/matrix"
	"github.com/katalvlaran/slae/prompt"
	"github.com/katalvlaran/slae/trial"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

// config is the resolved command-line configuration.
type config struct {
	file        string
	dim         int
	trials      int
	workers     int
	seed        int64
	eps         float64
	maxIter     int
	errorEps    float64
	plot        string
	bins        int
	print       bool
	verbose     bool
	interactive bool
}

// usageError marks a bad command line; it maps to exitUsage.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// cli carries the streams and state shared by the root command's hooks.
type cli struct {
	cfg    config
	stdin  io.Reader
	stdout *os.File
	stderr *os.File
	logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr *os.File) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := newRootCmd(c)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
		return exitUsage
	}
	if c.logger == nil {
		c.logger = newLogger(stderr, false)
	}
	c.logger.Error("run failed", tint.Err(err))

	return exitRun
}

// newRootCmd builds the slae command; flags bind into c.cfg.
func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slae",
		Short: "Compare Jacobi and Gauss-Seidel convergence",
		Long: `slae solves random or file-supplied linear systems with the Jacobi and
Gauss-Seidel methods and reports, per method, how many systems converged and
the average number of sweeps. Without --file or -n it asks interactively.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(*cobra.Command, []string) error {
			if err := c.cfg.resolve(); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.logger = newLogger(c.stderr, c.cfg.verbose)
			if c.cfg.interactive {
				in, err := prompt.Ask(c.stdin, c.stdout)
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				c.cfg.file, c.cfg.dim, c.cfg.trials = in.File, in.Dim, in.Trials
			}

			return execute(cmd.Context(), c.cfg, c.logger, c.stdout, c.stderr)
		},
	}
	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	f := cmd.Flags()
	f.StringVarP(&c.cfg.file, "file", "f", "", "matrix file (one row per line, n+1 numbers); empty generates random systems")
	f.IntVarP(&c.cfg.dim, "dim", "n", 0, "number of unknowns (required when generating; checked against --file)")
	f.IntVarP(&c.cfg.trials, "trials", "t", 1, "number of trials")
	f.IntVarP(&c.cfg.workers, "workers", "w", trial.DefaultWorkers, "solving goroutines")
	f.Int64Var(&c.cfg.seed, "seed", 0, "random seed (0 = time based)")
	f.Float64Var(&c.cfg.eps, "eps", iterative.DefaultEpsilon, "convergence tolerance on the max-norm change")
	f.IntVar(&c.cfg.maxIter, "max-iter", iterative.DefaultMaxIter, "sweep cap per solve")
	f.Float64Var(&c.cfg.errorEps, "error-eps", iterative.DefaultErrorEps, "divergence threshold on the max-norm change")
	f.StringVar(&c.cfg.plot, "plot", "", "write a histogram of converged sweep counts to this file (.png, .svg, .pdf)")
	f.IntVar(&c.cfg.bins, "bins", trial.DefaultHistogramBins, "histogram bins")
	f.BoolVar(&c.cfg.print, "print", false, "print every solved system")
	f.BoolVarP(&c.cfg.verbose, "verbose", "v", false, "debug logging")
	f.BoolVarP(&c.cfg.interactive, "interactive", "i", false, "ask for file, dimension and trial count")

	return cmd
}

// resolve switches to interactive mode when no input was named and checks
// the numeric flags.
func (cfg *config) resolve() error {
	if cfg.file == "" && cfg.dim == 0 {
		cfg.interactive = true
	}
	if !cfg.interactive {
		if cfg.file == "" && cfg.dim < 1 {
			return fmt.Errorf("--dim=%d: %w", cfg.dim, matrix.ErrInvalidDimensions)
		}
		if cfg.trials < 1 {
			return fmt.Errorf("--trials=%d: %w", cfg.trials, trial.ErrInvalidTrials)
		}
	}
	if cfg.workers < 1 {
		return fmt.Errorf("--workers=%d: %w", cfg.workers, trial.ErrInvalidWorkers)
	}
	if !positiveFinite(cfg.eps) || !positiveFinite(cfg.errorEps) || cfg.maxIter < 1 {
		return fmt.Errorf("--eps, --error-eps and --max-iter must be positive")
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// newLogger builds a tint handler on w; colours only on a terminal.
func newLogger(w *os.File, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}))
}

func execute(ctx context.Context, cfg config, logger *slog.Logger, stdout, stderr *os.File) error {
	src, err := newSource(cfg, logger)
	if err != nil {
		return err
	}

	solverOpts := []iterative.Option{
		iterative.WithEpsilon(cfg.eps),
		iterative.WithMaxIter(cfg.maxIter),
		iterative.WithErrorEps(cfg.errorEps),
		iterative.WithLogger(logger),
	}
	opts := []trial.Option{
		trial.WithTrials(cfg.trials),
		trial.WithWorkers(cfg.workers),
		trial.WithSolverOptions(solverOpts...),
		trial.WithResidualCheck(),
		trial.WithLogger(logger),
	}

	if cfg.print {
		opts = append(opts, trial.WithSystemHook(func(n int, sys *matrix.System) {
			fmt.Fprintf(stdout, "system %d\n%s", n, sys)
		}))
	} else if isatty.IsTerminal(stderr.Fd()) && cfg.trials > 1 {
		progress := uilive.New()
		progress.Out = stderr
		progress.Start()
		defer progress.Stop()
		opts = append(opts, trial.WithProgress(func(done, total int) {
			fmt.Fprintf(progress, "trial %d/%d\n", done, total)
		}))
	}

	runner, err := trial.NewRunner(opts...)
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx, src)
	if err != nil {
		return err
	}

	if err = trial.WriteReport(stdout, report); err != nil {
		return err
	}
	logger.Debug("worst residual among converged solves",
		slog.Float64("jacobi", report.Jacobi.MaxResidual),
		slog.Float64("gauss_seidel", report.GaussSeidel.MaxResidual))

	if cfg.plot != "" {
		if err = trial.PlotHistogram(report, cfg.plot, cfg.bins); err != nil {
			if errors.Is(err, trial.ErrNothingToPlot) {
				logger.Warn("histogram skipped", tint.Err(err))
				return nil
			}
			return err
		}
		logger.Info("histogram written", slog.String("path", cfg.plot))
	}

	return nil
}

// newSource picks the file or random source and checks the dimension.
func newSource(cfg config, logger *slog.Logger) (trial.Source, error) {
	if cfg.file == "" {
		seed := cfg.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debug("random systems", slog.Int("n", cfg.dim), slog.Int64("seed", seed))
		return trial.NewRandomSource(cfg.dim, seed)
	}

	src, err := trial.NewFileSource(cfg.file)
	if err != nil {
		return nil, err
	}
	if cfg.dim > 0 && cfg.dim != src.Dim() {
		return nil, fmt.Errorf("%s has %d unknowns, dimension %d requested: %w",
			cfg.file, src.Dim(), cfg.dim, matrix.ErrMalformedInput)
	}
	logger.Debug("loaded system", slog.String("file", cfg.file), slog.Int("n", src.Dim()))

	return src, nil
}
