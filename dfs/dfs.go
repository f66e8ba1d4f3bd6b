// Package dfs implements depth-first search (single-source and forest) on
// core.Graph. Edges are undirected and followed through Graph.Incident, so a
// vertex's neighbors are explored in edge-sequence order.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterEdge / WithEdgeSet, SkippedEdges diagnostic count
//   - Cancellation via context.Context
//   - Path and FindCycle on top of the traversal
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. With WithFullTraversal start
// may be nil and every component is covered; otherwise only start's.
func DFS(g *core.Graph, start *core.Vertex, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]*core.Vertex, 0, len(vertices)),
		Depth:   make(map[*core.Vertex]int, len(vertices)),
		Parent:  make(map[*core.Vertex]core.DirectedEdge, len(vertices)),
		Visited: make(map[*core.Vertex]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits v at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(v *core.Vertex, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", v, err)
		}
	}

	incident, err := w.graph.Incident(v)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Incident(%s): %w", v, err)
	}

	for _, d := range incident {
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(d) {
			w.opts.SkippedEdges++
			continue
		}
		if w.res.Visited[d.Target] {
			continue
		}
		w.res.Parent[d.Target] = d
		if err = w.traverse(d.Target, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %s: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}

// Path returns the edges of the DFS tree path from one vertex to another.
// On a forest (e.g. WithEdgeSet(accepted)) this is the unique path.
// Returns ErrNoPath when to is unreachable; from == to yields an empty path.
func Path(g *core.Graph, from, to *core.Vertex, opts ...Option) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("dfs: Path target %s: %w", to, ErrStartVertexNotFound)
	}
	stop := WithOnVisit(func(v *core.Vertex) error {
		if v == to {
			return errFound
		}
		return nil
	})
	res, err := DFS(g, from, append(append([]Option(nil), opts...), stop)...)
	if err != nil && !isFound(err) {
		return nil, err
	}
	if !res.Visited[to] {
		return nil, fmt.Errorf("dfs: %s to %s: %w", from, to, ErrNoPath)
	}

	return res.PathTo(to), nil
}
