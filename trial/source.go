// SPDX-License-Identifier: MIT

package trial

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/slae/matrix"
)

// Source produces the system solved by each trial.
// Runner calls Next from a single goroutine; implementations need not be
// safe for concurrent use.
type Source interface {
	// Dim returns the number of unknowns of every produced system.
	Dim() int
	// Next returns the system for the next trial.
	Next(ctx context.Context) (*matrix.System, error)
}

// RandomSource regenerates a random system for every trial.
type RandomSource struct {
	n   int
	rng *rand.Rand
}

var (
	_ Source = (*RandomSource)(nil)
	_ Source = (*FixedSource)(nil)
)

// NewRandomSource returns a Source of n-unknown random systems seeded with seed.
func NewRandomSource(n int, seed int64) (*RandomSource, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewRandomSource: n=%d: %w", n, matrix.ErrInvalidDimensions)
	}

	return &RandomSource{n: n, rng: rand.New(rand.NewSource(seed))}, nil
}

// Dim returns the number of unknowns.
func (s *RandomSource) Dim() int { return s.n }

// Next generates a fresh system.
func (s *RandomSource) Next(ctx context.Context) (*matrix.System, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return matrix.Generate(s.n, s.rng)
}

// FixedSource hands out the same system for every trial. Solvers never
// mutate a system, so sharing one instance across trials is safe.
type FixedSource struct {
	sys *matrix.System
}

// NewFixedSource wraps sys.
func NewFixedSource(sys *matrix.System) (*FixedSource, error) {
	if err := matrix.ValidateNotNil(sys); err != nil {
		return nil, fmt.Errorf("NewFixedSource: %w", err)
	}

	return &FixedSource{sys: sys}, nil
}

// NewFileSource reads path once (see matrix.ReadFile) and serves it every trial.
func NewFileSource(path string) (*FixedSource, error) {
	sys, err := matrix.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &FixedSource{sys: sys}, nil
}

// Dim returns the number of unknowns.
func (s *FixedSource) Dim() int { return s.sys.N() }

// System returns the wrapped system.
func (s *FixedSource) System() *matrix.System { return s.sys }

// Next returns the wrapped system.
func (s *FixedSource) Next(ctx context.Context) (*matrix.System, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.sys, nil
}
