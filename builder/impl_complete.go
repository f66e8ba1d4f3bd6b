// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Vertices sit on a ring.
//   - Emits one edge per unordered pair i<j, lexicographically by (i, j).
//
// Complexity: O(n²) time; n(n-1)/2 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, ring(n, cfg.radius))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, MethodComplete, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
