// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Adds n vertices named via cfg.idFn on a horizontal line.
//   - Emits edges i—(i+1) for i=0..n-2 in increasing order.
//
// Complexity: O(n) time, O(n) space for the vertex slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, cells(1, n, cfg.spacing))
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodPath, vs[i-1], vs[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
