// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Vertex 0 is the center, placed in the middle of the ring; 1..n-1 are leaves.
//   - Emits center—leaf edges in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Star returns a Constructor that builds the star S_n (one center, n-1 leaves).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		pts := append([]point{hub(cfg.radius)}, ring(n-1, cfg.radius)...)
		vs := addVertices(g, cfg, pts)

		return spokes(g, cfg, MethodStar, vs[0], vs[1:])
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, center *core.Vertex, leaves []*core.Vertex) error {
	for _, leaf := range leaves {
		if err := connect(g, cfg, method, center, leaf); err != nil {
			return err
		}
	}

	return nil
}
