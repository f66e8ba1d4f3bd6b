// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Vertices are added row-major and named via cfg.idFn, so a 3×3 grid
//     reads A B C / D E F / G H I.
//
// Contract:
//   - rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   - For each cell in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) time and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		vs := addVertices(g, cfg, cells(rows, cols, cfg.spacing))
		at := func(r, c int) *core.Vertex { return vs[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
