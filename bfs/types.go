package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

var (
	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option narrows the set of edges a traversal may follow.
type Option func(*options)

type options struct {
	follow func(d core.DirectedEdge) bool
}

func buildOptions(opts []Option) options {
	o := options{follow: func(core.DirectedEdge) bool { return true }}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithFilterEdge follows an incident edge only when fn returns true.
// The edge is oriented away from the vertex being expanded.
func WithFilterEdge(fn func(d core.DirectedEdge) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.follow = fn
		}
	}
}

// WithEdgeSet follows only the listed edges, e.g. the accepted edges of a
// spanning forest. An empty set isolates every vertex.
func WithEdgeSet(edges []*core.Edge) Option {
	allowed := make(map[*core.Edge]struct{}, len(edges))
	for _, e := range edges {
		allowed[e] = struct{}{}
	}

	return WithFilterEdge(func(d core.DirectedEdge) bool {
		_, ok := allowed[d.Edge]
		return ok
	})
}

// BFSResult is the breadth-first tree rooted at the start vertex.
type BFSResult struct {
	Order  []*core.Vertex                     // visit sequence
	Depth  map[*core.Vertex]int               // hops from the start
	Parent map[*core.Vertex]core.DirectedEdge // tree edge into each non-start vertex
}

// PathTo lists the vertices from the start to dest along tree edges.
func (r *BFSResult) PathTo(dest *core.Vertex) ([]*core.Vertex, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]*core.Vertex, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur].Origin
	}

	return path, nil
}
