// SPDX-License-Identifier: MIT

package trial

import (
	"fmt"
	"io"

	"github.com/katalvlaran/slae/iterative"
)

// Report is the result of one Run.
type Report struct {
	Trials      int
	Unknowns    int
	Epsilon     float64
	Jacobi      Stats
	GaussSeidel Stats
}

func newReport(trials, unknowns int, eps float64) Report {
	return Report{
		Trials:      trials,
		Unknowns:    unknowns,
		Epsilon:     eps,
		Jacobi:      Stats{Method: iterative.MethodJacobi},
		GaussSeidel: Stats{Method: iterative.MethodGaussSeidel},
	}
}

// ByMethod returns the statistics of m (Jacobi for unknown values).
func (r Report) ByMethod(m iterative.Method) Stats {
	if m == iterative.MethodGaussSeidel {
		return r.GaussSeidel
	}

	return r.Jacobi
}

// Report labels, in print order.
var reportSections = []struct {
	title  string
	method iterative.Method
}{
	{"JACOBI", iterative.MethodJacobi},
	{"GAUSS-SEIDEL", iterative.MethodGaussSeidel},
}

// undefinedAverage is printed instead of an average when nothing converged.
const undefinedAverage = "undefined"

// WriteReport prints the tolerance and, per method, the converged count out
// of the total, the percentage and the average sweep count (4 decimals).
//
//	tolerance 0.01
//	JACOBI
//	converged 2 of 3 systems (66.6667 %)
//	average iterations 6.0000
func WriteReport(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "tolerance %g\n", r.Epsilon); err != nil {
		return err
	}
	for _, sec := range reportSections {
		s := r.ByMethod(sec.method)
		if _, err := fmt.Fprintf(w, "%s\nconverged %d of %d systems (%.4f %%)\n",
			sec.title, s.Successes, r.Trials, s.Ratio()); err != nil {
			return err
		}
		var err error
		if avg, ok := s.AverageIterations(); ok {
			_, err = fmt.Fprintf(w, "average iterations %.4f\n", avg)
		} else {
			_, err = fmt.Fprintf(w, "average iterations %s\n", undefinedAverage)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
