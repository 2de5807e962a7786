// Package slae compares the two classical stationary iterative methods for
// systems of linear equations Ax = b: Jacobi and Gauss-Seidel.
//
// What is inside?
//
//	matrix/    — augmented System [A | b], text reader (mmap), random producer, validators
//	iterative/ — one sweep/decision loop for both methods, options, outcomes, residual
//	trial/     — repeated trials, per-method statistics, console report, histogram plot
//	prompt/    — interactive questions of the console program
//	cmd/slae/  — the console program
//
// A solve stops when the largest per-unknown change of a sweep is within the
// tolerance (converged), when it reaches the divergence threshold, when the
// sweep cap is hit, or as soon as a zero sits on the main diagonal.
//
// Quick example:
//
//	sys, _ := matrix.NewSystemFromRows([][]float64{{4, 1, 5}, {2, 3, 7}})
//	out, _ := iterative.GaussSeidel(sys, nil)
//	fmt.Println(out.Converged, out.Iterations, out.X) // true 5 [0.80… 1.79…]
//
//	go install github.com/katalvlaran/slae/cmd/slae@latest
package slae
