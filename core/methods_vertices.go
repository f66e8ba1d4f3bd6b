// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Vertex sequence protected by mu; every mutation bumps version.

package core

import "fmt"

// Add appends each vertex that is not already present (by identity).
// Duplicates and nil entries are skipped, so Add never fails.
//
// Complexity: O(k) for k arguments.
func (g *Graph) Add(vertices ...*Vertex) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range vertices {
		g.addLocked(v)
	}
}

// addLocked registers v if missing. Caller holds mu for writing.
func (g *Graph) addLocked(v *Vertex) bool {
	if v == nil {
		return false
	}
	if _, exists := g.members[v]; exists {
		return false // idempotent for duplicates
	}
	g.members[v] = struct{}{}
	g.vertices = append(g.vertices, v)
	g.version.Add(1)

	return true
}

// HasVertex reports whether v is a member of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v *Vertex) bool {
	if v == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.members[v]

	return ok
}

// Remove deletes v and, atomically, every edge incident to it.
//
// Implementation:
//   - Stage 1: Take the write lock so no reader sees v without its edges (or the reverse).
//   - Stage 2: Filter the edge sequence in place, keeping relative order.
//   - Stage 3: Drop v from the vertex sequence and the member set.
//
// Errors:
//   - ErrNilVertex: v == nil.
//   - ErrVertexNotFound: v is not a member.
//
// Complexity: O(V+E).
func (g *Graph) Remove(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeLocked(v)
}

// removeLocked implements Remove. Caller holds mu for writing.
func (g *Graph) removeLocked(v *Vertex) error {
	if _, ok := g.members[v]; !ok {
		return fmt.Errorf("remove %s: %w", v, ErrVertexNotFound)
	}

	// Stage 2: cascade to incident edges.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if !e.Touches(v) {
			kept = append(kept, e)
		}
	}
	// Clear the tail so removed edges can be collected.
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	// Stage 3: drop the vertex itself.
	for i, u := range g.vertices {
		if u == v {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}
	delete(g.members, v)
	g.version.Add(1)

	return nil
}

// RemoveAll removes each vertex as Remove does. Vertices that are nil or not
// members are skipped; the first such miss is reported after the rest have
// been processed.
func (g *Graph) RemoveAll(vertices []*Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var first error
	for _, v := range vertices {
		var err error
		if v == nil {
			err = ErrNilVertex
		} else {
			err = g.removeLocked(v)
		}
		if err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Vertices returns a snapshot of the vertex sequence in insertion order.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexByName returns the first vertex (in insertion order) with the given name.
func (g *Graph) VertexByName(name string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		if v.Name == name {
			return v, true
		}
	}

	return nil, false
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
