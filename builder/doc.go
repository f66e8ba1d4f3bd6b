// Package builder produces deterministic fixture graphs for the MST engine.
//
// A Constructor mutates a *core.Graph using a resolved configuration;
// BuildGraph creates a fresh graph and applies constructors in order, and
// Apply does the same on an existing graph. Constructors compose: each one
// names its vertices starting from the graph's current order, so
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Cycle(5), builder.Star(4),
//	)
//
// yields a five-vertex ring A..E and a separate star F..I.
//
// Topologies:
//
//	Path(n)            P_n, edges in index order
//	Cycle(n)           C_n on a ring, closing edge last
//	Star(n)            one center plus n-1 leaves
//	Wheel(n)           rim cycle, then hub spokes
//	Complete(n)        K_n, pairs lexicographically
//	Grid(rows, cols)   4-neighborhood, right then bottom per cell
//	RandomSparse(n, p) G(n, p), requires WithSeed/WithRand for 0<p<1
//
// Vertex names come from an IDFn (ExcelColumnIDFn by default, matching
// core.VertexFactory). Edge weights come from a WeightFn; WithUnweighted
// emits weight-less edges instead. Every vertex also gets a layout position
// (ring, line or grid) for presentation layers.
//
// Option constructors panic on meaningless input; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with context.
package builder
