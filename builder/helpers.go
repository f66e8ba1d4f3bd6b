// Package builder provides internal helper functions used by Constructor
// implementations: vertex insertion with layout positions and edge emission
// honoring the weight policy.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mststep/core"
)

// point is a layout position on the presentation canvas.
type point struct{ x, y int }

// addVertices creates one vertex per point, named cfg.idFn(base+i) where base
// is the current order of g, and adds them to g in point order.
//
// Complexity: O(len(points)) time and space.
func addVertices(g *core.Graph, cfg builderConfig, points []point) []*core.Vertex {
	base := g.Order()
	out := make([]*core.Vertex, len(points))
	for i, p := range points {
		out[i] = core.NewVertex(cfg.idFn(base+i), p.x, p.y)
	}
	g.Add(out...)

	return out
}

// connect adds u—v using the configured weight policy.
// Core errors are wrapped with method context and ErrConstructFailed.
func connect(g *core.Graph, cfg builderConfig, method string, u, v *core.Vertex) error {
	var err error
	if cfg.weighted {
		_, err = g.Connect(u, v, cfg.weightFn(cfg.rng))
	} else {
		_, err = g.ConnectUnweighted(u, v)
	}
	if err != nil {
		return fmt.Errorf("%s: Connect(%s,%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// ring places n points evenly on a circle, starting at the top and going
// clockwise (canvas y grows downwards).
func ring(n, radius int) []point {
	c := radius + layoutMargin
	out := make([]point, n)
	for i := range out {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		out[i] = point{
			x: c + int(math.Round(float64(radius)*math.Cos(theta))),
			y: c + int(math.Round(float64(radius)*math.Sin(theta))),
		}
	}

	return out
}

// hub returns the center of ring(_, radius).
func hub(radius int) point {
	c := radius + layoutMargin
	return point{x: c, y: c}
}

// cells lays out rows×cols points row-major with the given spacing.
func cells(rows, cols, spacing int) []point {
	out := make([]point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, point{x: layoutMargin + c*spacing, y: layoutMargin + r*spacing})
		}
	}

	return out
}
