// SPDX-License-Identifier: MIT

// Package trial drives repeated solves and aggregates convergence statistics.
//
// Each trial obtains a system from a Source (a fresh random system, or the
// same file-loaded system every time), runs Gauss-Seidel and then Jacobi on
// independent zero guesses, and records both outcomes:
//
//   - Successes grows by one for a converged outcome.
//   - IterationSum grows by the sweep count of converged outcomes only.
//
// After N trials a method's success ratio is 100·Successes/N and its average
// sweep count is IterationSum/Successes. With no successes the average is
// undefined: Stats.AverageIterations reports ok=false and WriteReport prints
// "undefined" rather than a NaN.
//
// Trials are independent, so Runner can fan them out to a worker pool
// (WithWorkers). Systems are still drawn from the Source by one goroutine,
// which keeps seeded random runs reproducible, and per-worker statistics are
// merged once all workers finish.
package trial
