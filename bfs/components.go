package bfs

import "github.com/katalvlaran/mststep/core"

// Components partitions the vertices of g into connected components.
// Components are listed in order of their first vertex in g's vertex
// sequence; members are listed in BFS visit order. Options (e.g. WithEdgeSet)
// restrict which edges connect vertices.
//
// Complexity: O(V·E) with Graph.Incident scanning the edge sequence per vertex,
// which is fine at interactive sizes.
func Components(g *core.Graph, opts ...Option) ([][]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[*core.Vertex]bool, g.Order())
	var out [][]*core.Vertex
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// CountComponents returns len(Components(g, opts...)).
func CountComponents(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
