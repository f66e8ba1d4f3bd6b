// SPDX-License-Identifier: MIT
// Package: mststep/config
//
// build.go - translation of a Scenario into a graph and engine settings.

package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

// BuildGraph creates the scenario graph. Explicit vertices come first in the
// listed order; edges then add any vertex they name that is still missing.
func (s *Scenario) BuildGraph() (*core.Graph, error) {
	gs := s.Graph
	if len(gs.Edges) > 0 || len(gs.Vertices) > 0 {
		return gs.explicit()
	}

	opts := []builder.BuilderOption{builder.WithSeed(gs.Seed)}
	if gs.Unweighted {
		opts = append(opts, builder.WithUnweighted())
	} else {
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(gs.MinWeight, gs.MaxWeight)))
	}

	var ctor builder.Constructor
	switch gs.Generator {
	case GeneratorPath:
		ctor = builder.Path(gs.N)
	case GeneratorCycle:
		ctor = builder.Cycle(gs.N)
	case GeneratorStar:
		ctor = builder.Star(gs.N)
	case GeneratorWheel:
		ctor = builder.Wheel(gs.N)
	case GeneratorComplete:
		ctor = builder.Complete(gs.N)
	case GeneratorGrid:
		ctor = builder.Grid(gs.Rows, gs.Cols)
	case GeneratorRandom:
		ctor = builder.RandomSparse(gs.N, gs.Probability)
	default:
		return nil, errors.Wrapf(ErrInvalidScenario, "unknown generator %q", gs.Generator)
	}

	g, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate %s graph", gs.Generator)
	}

	return g, nil
}

func (gs GraphSpec) explicit() (*core.Graph, error) {
	g := core.NewGraph()
	vertex := func(name string) *core.Vertex {
		if v, ok := g.VertexByName(name); ok {
			return v
		}
		// eight per row on the default grid spacing
		i := g.Order()
		v := core.NewVertex(name, 40+builder.DefaultSpacing*(i%8), 40+builder.DefaultSpacing*(i/8))
		g.Add(v)
		return v
	}
	for _, name := range gs.Vertices {
		vertex(name)
	}
	for i, e := range gs.Edges {
		u, v := vertex(e.From), vertex(e.To)
		var err error
		if e.Weight == nil {
			_, err = g.ConnectUnweighted(u, v)
		} else {
			_, err = g.Connect(u, v, *e.Weight)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "edge #%d %s-%s", i, e.From, e.To)
		}
	}

	return g, nil
}

// Settings translates delay and breakpoints into engine settings. Edge
// breakpoints are resolved against g; naming an edge g does not contain is
// an error.
func (s *Scenario) Settings(g *core.Graph) (engine.Settings, error) {
	set := engine.Settings{StepDelay: time.Duration(s.StepDelayMillis) * time.Millisecond}

	var fns []engine.BreakpointFunc
	if len(s.Breakpoints.Steps) > 0 {
		fns = append(fns, engine.BreakAtSteps(s.Breakpoints.Steps...))
	}
	if len(s.Breakpoints.Weights) > 0 {
		fns = append(fns, engine.BreakAtWeights(s.Breakpoints.Weights...))
	}
	if len(s.Breakpoints.Edges) > 0 {
		edges := make([]*core.Edge, 0, len(s.Breakpoints.Edges))
		for _, name := range s.Breakpoints.Edges {
			e, err := FindEdge(g, name)
			if err != nil {
				return engine.Settings{}, err
			}
			edges = append(edges, e)
		}
		fns = append(fns, engine.BreakOnEdges(edges...))
	}
	set.Breakpoint = engine.AnyBreakpoint(fns...)

	return set, nil
}

// FindEdge resolves "A-B" to the first edge of g joining A and B in either
// orientation.
func FindEdge(g *core.Graph, name string) (*core.Edge, error) {
	from, to, ok := splitEdge(name)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidScenario, "edge %q is not of the form A-B", name)
	}
	u, okU := g.VertexByName(from)
	v, okV := g.VertexByName(to)
	if okU && okV {
		for _, e := range g.Edges() {
			if e.Touches(u) && e.Touches(v) {
				return e, nil
			}
		}
	}

	return nil, errors.Wrapf(core.ErrEdgeNotFound, "edge %s", name)
}

// Options bundles the engine options the scenario implies.
func (s *Scenario) Options(g *core.Graph) ([]engine.Option, error) {
	set, err := s.Settings(g)
	if err != nil {
		return nil, err
	}

	return []engine.Option{engine.WithSettings(set)}, nil
}
