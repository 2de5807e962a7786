// SPDX-License-Identifier: MIT

// Package matrix - random system producer.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidDimensions).
//   - rng must be non-nil (else ErrNilRand); seed it for reproducible runs.
//   - Every coefficient and constant is drawn uniformly from
//     [GenMin, GenMax] and rounded to GenDecimals decimal places.
//
// Determinism:
//   - Stable fill order: row i asc, column j asc. A fixed seed always yields
//     the same system.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Generation domain (no magic literals).
const (
	GenMin      = -10.00
	GenMax      = 10.99
	GenDecimals = 2

	opGenerate = "Generate"
)

// Generate returns a fresh n-unknown system filled with random values.
func Generate(n int, rng *rand.Rand) (*System, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", opGenerate, ErrNilRand)
	}
	s, err := NewSystem(n)
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d: %w", opGenerate, n, err)
	}
	for i := range s.data {
		s.data[i] = randomValue(rng)
	}

	return s, nil
}

// randomValue draws one value in [GenMin, GenMax] rounded to GenDecimals.
func randomValue(rng *rand.Rand) float64 {
	scale := math.Pow(10, GenDecimals)
	v := GenMin + rng.Float64()*(GenMax-GenMin)

	return math.Round(v*scale) / scale
}
