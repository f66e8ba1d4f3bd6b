// SPDX-License-Identifier: MIT

package engine

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// NewPrim returns a Runner executing a lazy Prim's algorithm on g.
//
// The tree grows from the first vertex in insertion order. Each step pops
// the lightest candidate edge leaving the tree (ties by edge sequence
// position) and visits it; it is accepted if its far end is still outside
// the tree, rejected otherwise. When the heap runs dry the next vertex not
// yet in the tree seeds a new tree, so disconnected graphs yield a forest.
//
// The graph's edge order is left untouched.
//
// Complexity: O(E log E) heap work plus O(V·E) for incident-edge scans.
func NewPrim(g *core.Graph, opts ...Option) (*Runner, error) {
	return newRunner(g, "Prim", func(g *core.Graph) stepper {
		return &prim{graph: g}
	}, opts...)
}

type prim struct {
	graph  *core.Graph
	order  []*core.Vertex
	seed   int // next index in order to try as a root
	inTree map[*core.Vertex]bool
	rank   map[*core.Edge]int
	pq     candidatePQ
	cur    core.DirectedEdge
}

func (p *prim) prepare() error {
	p.order = p.graph.Vertices()
	p.inTree = make(map[*core.Vertex]bool, len(p.order))
	edges := p.graph.Edges()
	p.rank = make(map[*core.Edge]int, len(edges))
	for i, e := range edges {
		p.rank[e] = i
	}
	heap.Init(&p.pq)

	return nil
}

func (p *prim) next() (*core.Edge, bool, error) {
	for p.pq.Len() == 0 {
		for p.seed < len(p.order) && p.inTree[p.order[p.seed]] {
			p.seed++
		}
		if p.seed == len(p.order) {
			return nil, false, nil
		}
		if err := p.grow(p.order[p.seed]); err != nil {
			return nil, false, err
		}
	}
	p.cur = heap.Pop(&p.pq).(candidate).DirectedEdge

	return p.cur.Edge, true, nil
}

func (p *prim) settle(e *core.Edge) (bool, error) {
	if e != p.cur.Edge {
		return false, fmt.Errorf("%w: settling %s, expected %s", ErrInconsistentGraph, e, p.cur.Edge)
	}
	if p.inTree[p.cur.Target] {
		return false, nil
	}

	return true, p.grow(p.cur.Target)
}

// grow adds v to the tree and pushes every edge from v to a vertex outside it.
func (p *prim) grow(v *core.Vertex) error {
	p.inTree[v] = true
	incident, err := p.graph.Incident(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentGraph, err)
	}
	for _, d := range incident {
		if !p.inTree[d.Target] {
			heap.Push(&p.pq, candidate{DirectedEdge: d, rank: p.rank[d.Edge]})
		}
	}

	return nil
}

// candidate is a heap entry: an edge leaving the tree and its sequence rank.
type candidate struct {
	core.DirectedEdge
	rank int
}

// candidatePQ implements heap.Interface as a min-heap by (Weight, rank).
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if wi, wj := pq[i].Weight(), pq[j].Weight(); wi != wj {
		return wi < wj
	}
	return pq[i].rank < pq[j].rank
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
