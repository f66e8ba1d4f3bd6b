// Package bfs provides breadth-first search over a core.Graph and the
// connected-component partition built on it.
//
// BFS returns the visit order, the hop depth of every reached vertex and the
// tree edge each one was reached through. Weights are ignored: every edge
// counts as one hop.
//
// Edge filters
//
// WithFilterEdge decides per incident edge whether the walk may follow it.
// WithEdgeSet is the common case of a fixed set, which is how the engine
// counts the trees of an accepted forest:
//
//	trees, err := bfs.CountComponents(g, bfs.WithEdgeSet(res.Accepted))
//
// Determinism
//
// core.Graph.Incident yields edges in edge-sequence order and BFS queues
// targets in that order, so the visit sequence is reproducible for a given
// graph. Components are listed by their first vertex in vertex order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E)   (Incident scans the edge sequence once per vertex)
//   - Memory: O(V)     (queue, Depth map, Parent map)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not a member.
//   - ErrNeighbors            if core.Graph.Incident fails for any vertex.
package bfs
