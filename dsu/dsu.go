// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set (union-find) structure over the
// vertices of a core.Graph.
//
// The structure is an arena of indices: each vertex is mapped once to a dense
// index, and parent/size live in plain slices. No vertex ever points at its
// set entry, so there are no ownership cycles between the graph and the
// structure, and a DisjointSet can be dropped at the end of a run.
//
// Find uses full path compression; Union attaches the smaller tree's root
// under the larger one (union by size). Together they keep every operation
// at amortized O(α(V)).
//
// A DisjointSet is built from a fixed vertex set and never grows. Asking it
// about any other vertex is a programming error and panics with a message
// wrapping ErrUnknownVertex; callers that cannot rule this out check Has first.
//
// A DisjointSet is not safe for concurrent use; the engine confines it to the
// worker goroutine of a single run.
package dsu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// ErrUnknownVertex is the panic cause when Find or Union receives a vertex the
// structure was not built from.
var ErrUnknownVertex = errors.New("dsu: vertex not registered")

// DisjointSet partitions a fixed set of vertices into components.
type DisjointSet struct {
	index  map[*core.Vertex]int // vertex → arena slot
	parent []int                // parent[i] == i for roots
	size   []int                // size[i] valid for roots only
	count  int                  // number of components
}

// New builds a structure with every vertex in its own singleton component.
// nil entries and duplicates are ignored.
// Complexity: O(V).
func New(vertices []*core.Vertex) *DisjointSet {
	d := &DisjointSet{
		index:  make(map[*core.Vertex]int, len(vertices)),
		parent: make([]int, 0, len(vertices)),
		size:   make([]int, 0, len(vertices)),
	}
	for _, v := range vertices {
		if v == nil {
			continue
		}
		if _, dup := d.index[v]; dup {
			continue
		}
		i := len(d.parent)
		d.index[v] = i
		d.parent = append(d.parent, i)
		d.size = append(d.size, 1)
	}
	d.count = len(d.parent)

	return d
}

// Len returns the number of registered vertices.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the current number of components.
func (d *DisjointSet) Count() int { return d.count }

// Has reports whether v was registered.
func (d *DisjointSet) Has(v *core.Vertex) bool {
	_, ok := d.index[v]
	return ok
}

// Index returns the arena slot of v.
func (d *DisjointSet) Index(v *core.Vertex) (int, bool) {
	i, ok := d.index[v]
	return i, ok
}

// Find returns the representative slot of v's component.
// Panics (ErrUnknownVertex) if v was not registered.
func (d *DisjointSet) Find(v *core.Vertex) int {
	return d.findIndex(d.mustIndex(v))
}

// Union merges the components of a and b and reports true, or reports false
// if they already share a representative. A false result is how Kruskal learns
// that an edge would close a cycle.
// Panics (ErrUnknownVertex) if a or b was not registered.
func (d *DisjointSet) Union(a, b *core.Vertex) bool {
	ra := d.findIndex(d.mustIndex(a))
	rb := d.findIndex(d.mustIndex(b))
	if ra == rb {
		return false
	}
	// Attach smaller tree under larger root; ties go under a.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b are in the same component.
func (d *DisjointSet) Connected(a, b *core.Vertex) bool {
	return d.Find(a) == d.Find(b)
}

// Size returns the number of vertices in v's component.
func (d *DisjointSet) Size(v *core.Vertex) int {
	return d.size[d.Find(v)]
}

// findIndex walks to the root, then relinks every node on the walked chain
// directly to it.
func (d *DisjointSet) findIndex(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

func (d *DisjointSet) mustIndex(v *core.Vertex) int {
	i, ok := d.index[v]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownVertex, v))
	}

	return i
}
