// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/mststep/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentConnect ensures that concurrent Connect calls
// keep every edge and never duplicate the shared endpoint.
func TestConcurrentConnect(t *testing.T) {
	g := core.NewGraph()
	hub := core.NewVertex("X", 0, 0)
	const num = 200 // number of concurrent connects
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.Connect(hub, core.NewVertex(core.ColumnName(id), 0, 0), int64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, num, g.Size())
	require.Equal(t, num+1, g.Order())

	inc, err := g.Incident(hub)
	require.NoError(t, err)
	require.Len(t, inc, num)
}

// TestConcurrentMarkersAndReads mixes marker writes (the engine side) with
// snapshot reads and Reset (the presentation side).
func TestConcurrentMarkersAndReads(t *testing.T) {
	g := core.NewGraph()
	var f core.VertexFactory
	prev := f.NewVertex()
	for i := 0; i < 50; i++ {
		next := f.NewVertex()
		_, err := g.Connect(prev, next, int64(i))
		require.NoError(t, err)
		prev = next
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			for _, e := range g.Edges() {
				e.SetMark(core.MarkSelected)
				e.V1.SetMark(core.MarkVisited)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = g.Stats()
			for _, v := range g.Vertices() {
				_ = v.Mark()
				_, _ = v.Position()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			g.Reset()
			g.SortEdges()
		}
	}()
	wg.Wait()

	g.Reset()
	require.Zero(t, g.Stats().SelectedEdges)
}
