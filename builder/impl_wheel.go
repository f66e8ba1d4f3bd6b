// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ MinWheelNodes (else ErrTooFewVertices).
//   - Vertex 0 is the hub; 1..n-1 form the rim.
//   - Emits the rim cycle first (same order as Cycle), then hub spokes in rim order.
//
// Complexity: O(n) time; 2(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Wheel returns a Constructor that builds W_n: a hub joined to every vertex of C_{n-1}.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		pts := append([]point{hub(cfg.radius)}, ring(n-1, cfg.radius)...)
		vs := addVertices(g, cfg, pts)
		if err := closeRing(g, cfg, MethodWheel, vs[1:]); err != nil {
			return err
		}

		return spokes(g, cfg, MethodWheel, vs[0], vs[1:])
	}
}
