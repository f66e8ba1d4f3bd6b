// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, edge
// filtering, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/mststep/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Path or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not part of
	// the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoPath indicates that Path found no route between its endpoints.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v *core.Vertex) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to result.Order.
	OnExit func(v *core.Vertex) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each incident edge before recursing.
	// Return false to skip it; skipped edges are counted in SkippedEdges.
	FilterEdge func(d core.DirectedEdge) bool

	// FullTraversal restarts from every unvisited vertex in insertion order.
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns a DFSOptions with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v *core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v *core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge restricts the edges the traversal may follow.
func WithFilterEdge(fn func(d core.DirectedEdge) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// WithEdgeSet restricts traversal to the given edges, e.g. the accepted
// forest of an MST run.
func WithEdgeSet(edges []*core.Edge) Option {
	set := make(map[*core.Edge]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}

	return WithFilterEdge(func(d core.DirectedEdge) bool {
		_, ok := set[d.Edge]
		return ok
	})
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []*core.Vertex

	// Depth maps each vertex to its tree depth.
	Depth map[*core.Vertex]int

	// Parent maps each discovered vertex to the edge it was reached by,
	// oriented from the parent. Roots do not appear.
	Parent map[*core.Vertex]core.DirectedEdge

	// Visited flags which vertices were reached during the traversal.
	Visited map[*core.Vertex]bool

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}

// PathTo returns the tree edges from the root of v's tree down to v, or nil
// if v is a root or was not reached.
func (r *DFSResult) PathTo(v *core.Vertex) []*core.Edge {
	var rev []*core.Edge
	for {
		d, ok := r.Parent[v]
		if !ok {
			break
		}
		rev = append(rev, d.Edge)
		v = d.Origin
	}
	out := make([]*core.Edge, len(rev))
	for i, e := range rev {
		out[len(rev)-1-i] = e
	}

	return out
}
