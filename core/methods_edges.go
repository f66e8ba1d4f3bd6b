// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/ConnectUnweighted/RemoveEdge/HasEdge/Edges/Size,
//       ordering (SortEdges) and oriented incidence (Incident).
// Determinism:
//   - Edges() returns edges in sequence order: insertion order until SortEdges is called,
//     then ascending weight with ties in their previous relative order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Connect creates a weighted edge v1–v2, adding either endpoint to the vertex
// sequence if it is absent, and appends the edge to the edge sequence.
//
// Errors:
//   - ErrNilVertex: v1 or v2 is nil.
//   - ErrLoopNotAllowed: v1 == v2.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(v1, v2 *Vertex, weight int64) (*Edge, error) {
	return g.connect(v1, v2, weight, true)
}

// ConnectUnweighted is Connect without a weight: the edge gets DefaultWeight
// and Weighted == false.
func (g *Graph) ConnectUnweighted(v1, v2 *Vertex) (*Edge, error) {
	return g.connect(v1, v2, DefaultWeight, false)
}

func (g *Graph) connect(v1, v2 *Vertex, weight int64, weighted bool) (*Edge, error) {
	// 1) Input validation
	if v1 == nil || v2 == nil {
		return nil, ErrNilVertex
	}
	if v1 == v2 {
		return nil, fmt.Errorf("connect %s-%s: %w", v1, v2, ErrLoopNotAllowed)
	}

	e := &Edge{ID: uuid.New(), V1: v1, V2: v2, Weight: weight, Weighted: weighted}

	// 2) Auto-add endpoints and append the edge under one lock so the
	//    endpoint-membership invariant is never observably broken.
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addLocked(v1)
	g.addLocked(v2)
	g.edges = append(g.edges, e)
	g.version.Add(1)

	return e, nil
}

// RemoveEdge removes a single edge. Its endpoints stay, even if now isolated.
//
// Errors:
//   - ErrNilEdge: e == nil.
//   - ErrEdgeNotFound: e is not in the edge sequence.
//
// Complexity: O(E).
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i, cur := range g.edges {
		if cur == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.version.Add(1)

			return nil
		}
	}

	return fmt.Errorf("remove %s: %w", e, ErrEdgeNotFound)
}

// HasEdge reports whether e is in the edge sequence.
// Complexity: O(E).
func (g *Graph) HasEdge(e *Edge) bool {
	if e == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, cur := range g.edges {
		if cur == e {
			return true
		}
	}

	return false
}

// Edges returns a snapshot of the edge sequence.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SortEdges stable-sorts the edge sequence by ascending weight. Ties keep
// their current relative order, so repeated calls are no-ops and a graph
// built in the same order always sorts the same way.
//
// Sorting reorders but does not change the edge set, so it does not count as
// a structural mutation (Version is unchanged).
//
// Complexity: O(E log E).
func (g *Graph) SortEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	sort.SliceStable(g.edges, func(i, j int) bool {
		return g.edges[i].Weight < g.edges[j].Weight
	})
}

// Incident returns every edge touching v, oriented away from v, in edge
// sequence order.
//
// Errors:
//   - ErrNilVertex: v == nil.
//   - ErrVertexNotFound: v is not a member.
//
// Complexity: O(E).
func (g *Graph) Incident(v *Vertex) ([]DirectedEdge, error) {
	if v == nil {
		return nil, ErrNilVertex
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.members[v]; !ok {
		return nil, fmt.Errorf("incident %s: %w", v, ErrVertexNotFound)
	}

	var out []DirectedEdge
	for _, e := range g.edges {
		if d, ok := e.From(v); ok {
			out = append(out, d)
		}
	}

	return out, nil
}
