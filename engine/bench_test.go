package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

func benchGraph(b *testing.B, cons ...builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		cons...,
	)
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}

	return g
}

func benchmarkMethod(b *testing.B, method string, g *core.Graph) {
	b.ReportAllocs()
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		r := newRunner(b, method, g)
		if _, err := r.Execute(ctx); err != nil {
			b.Fatalf("Execute: %v", err)
		}
		r.Reset()
	}
}

func BenchmarkKruskal_Grid30(b *testing.B) {
	benchmarkMethod(b, engine.MethodKruskal, benchGraph(b, builder.Grid(30, 30)))
}

func BenchmarkPrim_Grid30(b *testing.B) {
	benchmarkMethod(b, engine.MethodPrim, benchGraph(b, builder.Grid(30, 30)))
}

func BenchmarkKruskal_Complete60(b *testing.B) {
	benchmarkMethod(b, engine.MethodKruskal, benchGraph(b, builder.Complete(60)))
}

func BenchmarkPrim_Complete60(b *testing.B) {
	benchmarkMethod(b, engine.MethodPrim, benchGraph(b, builder.Complete(60)))
}
