// SPDX-License-Identifier: MIT
package trial_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/slae/iterative"
	"github.com/katalvlaran/slae/trial"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	r := trial.Report{
		Trials:  3,
		Epsilon: 0.01,
		Jacobi: trial.Aggregate(iterative.MethodJacobi, []iterative.Outcome{
			{Converged: true, Iterations: 5},
			{Reason: iterative.ReasonDiverged, Iterations: 12},
			{Converged: true, Iterations: 7},
		}),
		GaussSeidel: trial.Aggregate(iterative.MethodGaussSeidel, []iterative.Outcome{
			{Reason: iterative.ReasonZeroPivot, Iterations: 1},
			{Reason: iterative.ReasonZeroPivot, Iterations: 1},
			{Reason: iterative.ReasonZeroPivot, Iterations: 1},
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, trial.WriteReport(&buf, r))
	require.Equal(t, "tolerance 0.01\n"+
		"JACOBI\n"+
		"converged 2 of 3 systems (66.6667 %)\n"+
		"average iterations 6.0000\n"+
		"GAUSS-SEIDEL\n"+
		"converged 0 of 3 systems (0.0000 %)\n"+
		"average iterations undefined\n", buf.String())
	require.NotContains(t, buf.String(), "NaN")
}

func TestReportByMethod(t *testing.T) {
	t.Parallel()

	r := trial.Report{
		Jacobi:      trial.Stats{Method: iterative.MethodJacobi, Successes: 1},
		GaussSeidel: trial.Stats{Method: iterative.MethodGaussSeidel, Successes: 2},
	}
	require.Equal(t, 1, r.ByMethod(iterative.MethodJacobi).Successes)
	require.Equal(t, 2, r.ByMethod(iterative.MethodGaussSeidel).Successes)
}
