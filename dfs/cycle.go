package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// errFound stops a traversal early once the target is seen.
var errFound = errors.New("dfs: found")

func isFound(err error) bool { return errors.Is(err, errFound) }

// FindCycle reports one cycle of the undirected graph g (restricted by
// opts), as its edges in walk order, or nil if g is a forest.
//
// A back edge is any followed edge to a vertex already on the current tree,
// other than the tree edge leading back to the parent. Parallel edges are
// distinct edges, so two of them between the same pair form a cycle.
//
// Complexity: O(V + E).
func FindCycle(g *core.Graph, opts ...Option) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	var (
		onStack = make(map[*core.Vertex]bool)
		parent  = make(map[*core.Vertex]core.DirectedEdge)
		seen    = make(map[*core.Vertex]bool)
		cycle   []*core.Edge
	)

	var visit func(v *core.Vertex, via *core.Edge) error
	visit = func(v *core.Vertex, via *core.Edge) error {
		select {
		case <-dopts.Ctx.Done():
			return dopts.Ctx.Err()
		default:
		}
		seen[v], onStack[v] = true, true

		incident, err := g.Incident(v)
		if err != nil {
			return fmt.Errorf("dfs: Incident(%s): %w", v, err)
		}
		for _, d := range incident {
			if d.Edge == via {
				continue
			}
			if dopts.FilterEdge != nil && !dopts.FilterEdge(d) {
				continue
			}
			if onStack[d.Target] {
				// walk the tree back from v to the target, then close with d
				var rev []*core.Edge
				for u := v; u != d.Target; u = parent[u].Origin {
					rev = append(rev, parent[u].Edge)
				}
				for i := len(rev) - 1; i >= 0; i-- {
					cycle = append(cycle, rev[i])
				}
				cycle = append(cycle, d.Edge)
				return errFound
			}
			if seen[d.Target] {
				continue
			}
			parent[d.Target] = d
			if err = visit(d.Target, d.Edge); err != nil {
				return err
			}
		}
		onStack[v] = false

		return nil
	}

	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		if err := visit(v, nil); err != nil {
			if isFound(err) {
				return cycle, nil
			}
			return nil, err
		}
	}

	return nil, nil
}
