// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/dsu"
)

// NewKruskal returns a Runner executing Kruskal's algorithm on g.
//
// Steps of a run:
//  1. g.SortEdges(): ascending weight, ties in insertion order (stable).
//  2. Build a fresh disjoint set over the current vertex set.
//  3. For each edge in sorted order: mark it visited, pause if a breakpoint
//     matches, then Union its endpoints. A merge accepts the edge (marked
//     selected); "already connected" rejects it as a cycle.
//  4. After the last edge the accepted set is the minimum spanning forest.
//
// Every edge is visited, even after the forest is complete, so that a
// presentation sees each rejection.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func NewKruskal(g *core.Graph, opts ...Option) (*Runner, error) {
	return newRunner(g, "Kruskal", func(g *core.Graph) stepper {
		return &kruskal{graph: g}
	}, opts...)
}

type kruskal struct {
	graph *core.Graph
	edges []*core.Edge
	pos   int
	set   *dsu.DisjointSet
}

func (k *kruskal) prepare() error {
	k.graph.SortEdges()
	k.edges = k.graph.Edges()
	k.set = dsu.New(k.graph.Vertices())

	return nil
}

func (k *kruskal) next() (*core.Edge, bool, error) {
	if k.pos >= len(k.edges) {
		return nil, false, nil
	}
	e := k.edges[k.pos]
	k.pos++

	return e, true, nil
}

func (k *kruskal) settle(e *core.Edge) (bool, error) {
	// a vertex missing from the set means it was added or removed behind our back
	for _, v := range [2]*core.Vertex{e.V1, e.V2} {
		if !k.set.Has(v) {
			return false, fmt.Errorf("%w: %s has no disjoint-set entry", ErrInconsistentGraph, v)
		}
	}

	return k.set.Union(e.V1, e.V2), nil
}
