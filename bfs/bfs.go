package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// ErrNeighbors is returned when fetching incident edges from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// BFS walks g breadth-first from start. Targets are queued in edge-sequence
// order, so the visit order is reproducible for a given graph.
func BFS(g *core.Graph, start *core.Vertex, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	o := buildOptions(opts)

	n := g.Order()
	res := &BFSResult{
		Order:  make([]*core.Vertex, 0, n),
		Depth:  map[*core.Vertex]int{start: 0},
		Parent: make(map[*core.Vertex]core.DirectedEdge, n),
	}
	queue := []*core.Vertex{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)

		incident, err := g.Incident(v)
		if err != nil {
			return res, fmt.Errorf("%w: incident edges of %q: %v", ErrNeighbors, v, err)
		}
		for _, d := range incident {
			if !o.follow(d) {
				continue
			}
			if _, seen := res.Depth[d.Target]; seen {
				continue
			}
			res.Depth[d.Target] = res.Depth[v] + 1
			res.Parent[d.Target] = d
			queue = append(queue, d.Target)
		}
	}

	return res, nil
}
