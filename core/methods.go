// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph operations: Reset, Version, Stats.

package core

// Reset restores every vertex and edge marker to MarkNone. Structure is left
// as is. Calling Reset twice leaves the same state as calling it once.
//
// Complexity: O(V+E).
func (g *Graph) Reset() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		v.SetMark(MarkNone)
	}
	for _, e := range g.edges {
		e.SetMark(MarkNone)
	}
}

// Version returns a counter that grows on every structural mutation
// (Add of a new vertex, Connect, Remove, RemoveAll, RemoveEdge).
// Marker changes and SortEdges do not advance it.
func (g *Graph) Version() uint64 {
	return g.version.Load()
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Vertices      int
	Edges         int
	TotalWeight   int64
	VisitedEdges  int
	SelectedEdges int
}

// Stats takes a consistent snapshot of counts and marker totals.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{Vertices: len(g.vertices), Edges: len(g.edges)}
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
		switch e.Mark() {
		case MarkVisited:
			s.VisitedEdges++
		case MarkSelected:
			// a selected edge was visited first
			s.VisitedEdges++
			s.SelectedEdges++
		}
	}

	return s
}
