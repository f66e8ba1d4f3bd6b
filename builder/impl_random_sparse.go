// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p) over unordered pairs.
//
// Contract:
//   - n ≥ MinRandomSparseNodes (else ErrTooFewVertices).
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires cfg.rng (else ErrNeedRandSource). p=0 and p=1 are
//     deterministic and need no RNG.
//   - Pairs (i, j), i<j, are sampled lexicographically; each is kept when
//     rng.Float64() < p. Weights are drawn from the same RNG stream right after
//     the pair is kept, so a seed fixes both topology and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// RandomSparse returns a Constructor that builds a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.3f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if p > MinProbability && p < MaxProbability && cfg.rng == nil {
			return fmt.Errorf("%s: p=%.3f: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		vs := addVertices(g, cfg, ring(n, cfg.radius))
		if p == MinProbability {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
