// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/slae/iterative"
	"github.com/katalvlaran/slae/matrix"
	"github.com/katalvlaran/slae/trial"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// parseArgs runs the root command's flag parsing and validation without
// executing the solve.
func parseArgs(t *testing.T, args []string) (config, error) {
	t.Helper()
	c := &cli{stdin: strings.NewReader(""), stdout: os.Stdout, stderr: os.Stderr}
	cmd := newRootCmd(c)
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return c.cfg, err
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantErr     error
		interactive bool
	}{
		{"no flags goes interactive", nil, nil, true},
		{"generate", []string{"-n", "4", "--trials", "10"}, nil, false},
		{"generate shorthands", []string{"-n", "4", "-t", "10", "-w", "3"}, nil, false},
		{"file", []string{"--file", "a.txt"}, nil, false},
		{"forced interactive", []string{"-i", "-n", "2"}, nil, true},
		{"negative n", []string{"-n=-3"}, matrix.ErrInvalidDimensions, false},
		{"zero trials", []string{"-n", "3", "--trials", "0"}, trial.ErrInvalidTrials, false},
		{"zero workers", []string{"-n", "3", "--workers", "0"}, trial.ErrInvalidWorkers, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := parseArgs(t, tc.args)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				var ue usageError
				require.ErrorAs(t, err, &ue)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.interactive, cfg.interactive)
		})
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseArgs(t, []string{"-n", "5"})
	require.NoError(t, err)
	require.Equal(t, 5, cfg.dim)
	require.Equal(t, 1, cfg.trials)
	require.Equal(t, trial.DefaultWorkers, cfg.workers)
	require.Equal(t, iterative.DefaultEpsilon, cfg.eps)
	require.Equal(t, iterative.DefaultMaxIter, cfg.maxIter)
	require.Equal(t, iterative.DefaultErrorEps, cfg.errorEps)
	require.Equal(t, trial.DefaultHistogramBins, cfg.bins)
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"-n", "2", "--eps", "0"},
		{"-n", "2", "--error-eps", "+Inf"},
		{"-n", "2", "--max-iter", "0"},
		{"-n", "2", "extra"},
		{"-n", "two"},
		{"--no-such-flag"},
	} {
		_, err := parseArgs(t, args)
		var ue usageError
		require.ErrorAsf(t, err, &ue, "args %v", args)
	}
}

func TestRunUsageExitCodes(t *testing.T) {
	code, _, errOut := runCapture(t, []string{"--bogus"}, "")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "unknown flag")
	require.Contains(t, errOut, "slae --help")

	code, out, _ := runCapture(t, []string{"--help"}, "")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "--trials")
}

// runCapture executes run with stdout/stderr redirected into temp files.
func runCapture(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	dir := t.TempDir()
	out, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer out.Close()
	errf, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer errf.Close()

	code = run(args, strings.NewReader(stdin), out, errf)

	o, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	e, err := os.ReadFile(errf.Name())
	require.NoError(t, err)

	return code, string(o), string(e)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 1 5\n2 3 7\n"), 0o600))

	code, out, _ := runCapture(t, []string{"--file", path, "-n", "2", "--print"}, "")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "system 1\n[4, 1, 5]\n[2, 3, 7]\n")
	require.Contains(t, out, "JACOBI\nconverged 1 of 1 systems (100.0000 %)\naverage iterations 8.0000\n")
	require.Contains(t, out, "GAUSS-SEIDEL\nconverged 1 of 1 systems (100.0000 %)\naverage iterations 5.0000\n")
}

func TestRunFileDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 1 5\n2 3 7\n"), 0o600))

	code, _, errOut := runCapture(t, []string{"--file", path, "-n", "3"}, "")
	require.Equal(t, exitRun, code)
	require.Contains(t, errOut, "malformed input")
}

func TestRunMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 1 5\n2 three 7\n"), 0o600))

	code, out, errOut := runCapture(t, []string{"--file", path}, "")
	require.Equal(t, exitRun, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "line 2, column 2")
}

func TestRunInteractiveGenerate(t *testing.T) {
	code, out, _ := runCapture(t, []string{"--seed", "7", "--workers", "2"}, "\nabc\n\n3\n25\n")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "invalid dimension")
	require.Contains(t, out, "of 25 systems")
	require.Contains(t, out, "tolerance 0.01\n")
}

func TestRunPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 1 1 12\n1 10 1 12\n1 1 10 12\n"), 0o600))
	plot := filepath.Join(t.TempDir(), "hist.svg")

	code, _, _ := runCapture(t, []string{"--file", path, "--trials", "3", "--plot", plot}, "")
	require.Equal(t, exitOK, code)
	info, err := os.Stat(plot)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
