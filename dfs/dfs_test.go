package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/dfs"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithWeightFn(builder.SequentialWeightFn(1))}, cons...)
	require.NoError(t, err)
	return g
}

func vertex(t *testing.T, g *core.Graph, name string) *core.Vertex {
	t.Helper()
	v, ok := g.VertexByName(name)
	require.True(t, ok, "vertex %s", name)
	return v
}

func names(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func edgeNames(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}
	return out
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, builder.Path(2))
	_, err = dfs.DFS(g, core.NewVertex("X", 0, 0))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFS_PostOrderAndDepth walks a 2×2 grid: A-B, A-C, B-D, C-D.
func TestDFS_PostOrderAndDepth(t *testing.T) {
	g := build(t, builder.Grid(2, 2))
	a := vertex(t, g, "A")

	var pre []string
	res, err := dfs.DFS(g, a, dfs.WithOnVisit(func(v *core.Vertex) error {
		pre = append(pre, v.Name)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, pre)
	assert.Equal(t, []string{"C", "D", "B", "A"}, names(res.Order))
	assert.Equal(t, 3, res.Depth[vertex(t, g, "C")])
	assert.Equal(t, []string{"A-B(1)", "B-D(3)", "C-D(4)"}, edgeNames(res.PathTo(vertex(t, g, "C"))))
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, builder.Path(5))
	a := vertex(t, g, "A")

	res, err := dfs.DFS(g, a, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 3)

	res, err = dfs.DFS(g, a, dfs.WithFilterEdge(func(d core.DirectedEdge) bool { return d.Weight() < 3 }))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, names(res.Order))
	assert.Equal(t, 1, res.SkippedEdges, "C-D is tried once, from C")
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, builder.Path(2), builder.Path(3))
	res, err := dfs.DFS(g, nil, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 5)
	assert.Equal(t, []string{"B", "A", "E", "D", "C"}, names(res.Order))
}

func TestDFS_HooksAbortAndCancel(t *testing.T) {
	g := build(t, builder.Path(4))
	a := vertex(t, g, "A")
	boom := errors.New("boom")

	res, err := dfs.DFS(g, a, dfs.WithOnExit(func(v *core.Vertex) error {
		if v.Name == "C" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, a, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	g := build(t, builder.Cycle(5))
	a, c := vertex(t, g, "A"), vertex(t, g, "C")

	p, err := dfs.Path(g, a, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B(1)", "B-C(2)"}, edgeNames(p))

	// without A-B the only way round is the long one
	rest := g.Edges()[1:]
	p, err = dfs.Path(g, a, c, dfs.WithEdgeSet(rest))
	require.NoError(t, err)
	assert.Equal(t, []string{"E-A(5)", "D-E(4)", "C-D(3)"}, edgeNames(p))

	p, err = dfs.Path(g, a, a)
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = dfs.Path(g, a, c, dfs.WithEdgeSet(nil))
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestPath_KeepsCallerOptions(t *testing.T) {
	g := build(t, builder.Path(4))
	a, d := vertex(t, g, "A"), vertex(t, g, "D")

	opts := make([]dfs.Option, 1, 4)
	opts[0] = dfs.WithEdgeSet(g.Edges())
	p, err := dfs.Path(g, a, d, opts...)
	require.NoError(t, err)
	assert.Len(t, p, 3)
	assert.Nil(t, opts[:cap(opts)][1], "spare capacity must stay untouched")

	// a caller reusing the slice with its own visit hook still sees every vertex
	var seen int
	res, err := dfs.DFS(g, a, append(opts, dfs.WithOnVisit(func(*core.Vertex) error { seen++; return nil }))...)
	require.NoError(t, err)
	assert.Equal(t, 4, seen)
	assert.Len(t, res.Order, 4)
}

func TestFindCycle(t *testing.T) {
	cyc, err := dfs.FindCycle(build(t, builder.Star(5)))
	require.NoError(t, err)
	assert.Nil(t, cyc, "a star is a tree")

	g := build(t, builder.Path(3), builder.Cycle(4))
	cyc, err = dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"D-E(3)", "E-F(4)", "F-G(5)", "G-D(6)"}, edgeNames(cyc))

	cyc, err = dfs.FindCycle(g, dfs.WithEdgeSet(g.Edges()[:4]))
	require.NoError(t, err)
	assert.Nil(t, cyc)

	_, err = dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestFindCycle_ParallelEdges treats two edges between one pair as a cycle.
func TestFindCycle_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	var f core.VertexFactory
	a, b := f.NewVertex(), f.NewVertex()
	_, err := g.Connect(a, b, 1)
	require.NoError(t, err)
	_, err = g.Connect(b, a, 2)
	require.NoError(t, err)

	cyc, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B(1)", "B-A(2)"}, edgeNames(cyc))
}
