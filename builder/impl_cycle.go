// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Vertices sit on a ring, clockwise from the top.
//   - Emits edges i—(i+1) for i=0..n-2, then the closing edge (n-1)—0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, ring(n, cfg.radius))

		return closeRing(g, cfg, MethodCycle, vs)
	}
}

// closeRing connects vs[i]—vs[i+1] and finally vs[n-1]—vs[0].
func closeRing(g *core.Graph, cfg builderConfig, method string, vs []*core.Vertex) error {
	for i := range vs {
		if err := connect(g, cfg, method, vs[i], vs[(i+1)%len(vs)]); err != nil {
			return err
		}
	}

	return nil
}
