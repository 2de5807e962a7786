// SPDX-License-Identifier: MIT

package trial

import "github.com/katalvlaran/slae/iterative"

// Stats accumulates the outcomes of one method over a run.
//   - Successes / IterationSum drive the reported ratio and average.
//   - ZeroPivots, IterationCaps, Divergences break the failures down.
//   - Iterations keeps each converged sweep count (for histograms); its
//     order is the trial order only for sequential runs.
//   - MaxResidual is the worst ‖A·x − b‖∞ among converged outcomes, filled
//     only when the runner checks residuals.
type Stats struct {
	Method        iterative.Method
	Trials        int
	Successes     int
	IterationSum  int
	ZeroPivots    int
	IterationCaps int
	Divergences   int
	Iterations    []int
	MaxResidual   float64
}

// Record adds one outcome.
func (s *Stats) Record(o iterative.Outcome) {
	s.Trials++
	switch o.Reason {
	case iterative.ReasonZeroPivot:
		s.ZeroPivots++
	case iterative.ReasonIterationCap:
		s.IterationCaps++
	case iterative.ReasonDiverged:
		s.Divergences++
	}
	if !o.Converged {
		return
	}
	s.Successes++
	s.IterationSum += o.Iterations
	s.Iterations = append(s.Iterations, o.Iterations)
}

// Merge folds other into s. Both must describe the same method.
func (s *Stats) Merge(other Stats) {
	s.Trials += other.Trials
	s.Successes += other.Successes
	s.IterationSum += other.IterationSum
	s.ZeroPivots += other.ZeroPivots
	s.IterationCaps += other.IterationCaps
	s.Divergences += other.Divergences
	s.Iterations = append(s.Iterations, other.Iterations...)
	if other.MaxResidual > s.MaxResidual {
		s.MaxResidual = other.MaxResidual
	}
}

// Failures returns the number of unconverged trials.
func (s Stats) Failures() int { return s.Trials - s.Successes }

// Ratio returns the success percentage 100·Successes/Trials (0 for no trials).
func (s Stats) Ratio() float64 {
	if s.Trials == 0 {
		return 0
	}

	return 100 * float64(s.Successes) / float64(s.Trials)
}

// AverageIterations returns IterationSum/Successes. ok is false, and the
// value 0, when nothing converged.
func (s Stats) AverageIterations() (avg float64, ok bool) {
	if s.Successes == 0 {
		return 0, false
	}

	return float64(s.IterationSum) / float64(s.Successes), true
}

// Aggregate records outcomes in order into a fresh Stats for method.
func Aggregate(method iterative.Method, outcomes []iterative.Outcome) Stats {
	s := Stats{Method: method}
	for _, o := range outcomes {
		s.Record(o)
	}

	return s
}
