// Package mststep is a steppable minimum-spanning-tree engine: build a graph,
// run Kruskal (or Prim) over it, and watch, pause, single-step or reset the
// run edge by edge.
//
// Packages:
//
//	core/     Graph, Vertex, Edge, DirectedEdge, markers and the vertex name factory
//	dsu/      disjoint-set forest over a vertex arena (union by size, path compression)
//	engine/   Runner with the IDLE → RUNNING ⇄ PAUSED → COMPLETED protocol,
//	          Kruskal and Prim, breakpoints, observers and results
//	bfs/      breadth-first traversal and connected components
//	dfs/      depth-first traversal, forest paths and cycle detection
//	builder/  deterministic fixture graphs (path, cycle, star, wheel, complete, grid, random)
//	config/   YAML scenarios
//	console/  terminal renderer, summary table and interactive session
//	cmd/      the mststep command
//
// Quick start:
//
//	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7),
//		builder.WithWeightFn(builder.UniformWeightFn(1, 9))}, builder.Complete(5))
//	r, _ := engine.NewKruskal(g, engine.WithSettings(engine.Settings{
//		Breakpoint: engine.BreakAtSteps(3),
//	}))
//	_ = r.StartAlgorithm(false)
//	// ... the run pauses before settling its third edge
//	r.Step()   // settle it, then pause before the fourth
//	r.Resume() // run to the end
//	res, _ := r.Wait(context.Background())
//	fmt.Println(res)
package mststep
