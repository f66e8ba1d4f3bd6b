// SPDX-License-Identifier: MIT
// Package: mststep/config
//
// scenario.go - YAML scenario model and loading.

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mststep/engine"
)

// ErrInvalidScenario marks a scenario that parsed but cannot be run.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Generator names accepted in graph.generator.
const (
	GeneratorPath     = "path"
	GeneratorCycle    = "cycle"
	GeneratorStar     = "star"
	GeneratorWheel    = "wheel"
	GeneratorComplete = "complete"
	GeneratorGrid     = "grid"
	GeneratorRandom   = "random"
)

// Generators lists the accepted generator names in documentation order.
func Generators() []string {
	return []string{
		GeneratorPath, GeneratorCycle, GeneratorStar, GeneratorWheel,
		GeneratorComplete, GeneratorGrid, GeneratorRandom,
	}
}

// Scenario is one harness run: which variant, how it is paced and paused,
// and the graph it runs on.
type Scenario struct {
	Algorithm       string      `yaml:"algorithm"`
	StepDelayMillis int         `yaml:"stepDelayMillis"`
	StartPaused     bool        `yaml:"startPaused"`
	Breakpoints     Breakpoints `yaml:"breakpoints"`
	Graph           GraphSpec   `yaml:"graph"`
}

// Breakpoints selects the edges the run pauses on. Edges are written "A-B"
// and match either orientation.
type Breakpoints struct {
	Steps   []int    `yaml:"steps,omitempty"`
	Weights []int64  `yaml:"weights,omitempty"`
	Edges   []string `yaml:"edges,omitempty"`
}

// GraphSpec describes the graph either by generator or by an explicit
// vertex and edge list. Explicit edges take precedence.
type GraphSpec struct {
	Generator   string     `yaml:"generator,omitempty"`
	N           int        `yaml:"n,omitempty"`
	Rows        int        `yaml:"rows,omitempty"`
	Cols        int        `yaml:"cols,omitempty"`
	Probability float64    `yaml:"probability,omitempty"`
	Seed        int64      `yaml:"seed,omitempty"`
	MinWeight   int64      `yaml:"minWeight,omitempty"`
	MaxWeight   int64      `yaml:"maxWeight,omitempty"`
	Unweighted  bool       `yaml:"unweighted,omitempty"`
	Vertices    []string   `yaml:"vertices,omitempty"`
	Edges       []EdgeSpec `yaml:"edges,omitempty"`
}

// EdgeSpec is one explicit edge. A missing weight creates a weight-less edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight,omitempty"`
}

// Default returns the scenario used when no file is given: Kruskal on a
// seeded six-vertex random graph.
func Default() *Scenario {
	return &Scenario{
		Algorithm: engine.MethodKruskal,
		Graph: GraphSpec{
			Generator:   GeneratorRandom,
			N:           6,
			Probability: 0.5,
			Seed:        1,
			MinWeight:   1,
			MaxWeight:   9,
		},
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}

	return s, nil
}

// Parse decodes a YAML scenario, fills defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err, "failed to decode scenario")
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Marshal encodes the scenario back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	return out, errors.Wrap(err, "failed to encode scenario")
}

func (s *Scenario) applyDefaults() {
	if s.Algorithm == "" {
		s.Algorithm = engine.MethodKruskal
	}
	s.Algorithm = strings.ToLower(s.Algorithm)
	s.Graph.Generator = strings.ToLower(s.Graph.Generator)
	if s.Graph.MinWeight == 0 && s.Graph.MaxWeight == 0 {
		s.Graph.MinWeight, s.Graph.MaxWeight = 1, 1
	}
}

// Validate reports the first problem that would stop the scenario from
// running. All errors wrap ErrInvalidScenario.
func (s *Scenario) Validate() error {
	known := false
	for _, m := range engine.Methods() {
		known = known || m == s.Algorithm
	}
	if !known {
		return errors.Wrapf(ErrInvalidScenario, "unknown algorithm %q (want one of %s)",
			s.Algorithm, strings.Join(engine.Methods(), ", "))
	}
	if s.StepDelayMillis < 0 {
		return errors.Wrapf(ErrInvalidScenario, "stepDelayMillis must be ≥ 0, got %d", s.StepDelayMillis)
	}
	for _, step := range s.Breakpoints.Steps {
		if step < 1 {
			return errors.Wrapf(ErrInvalidScenario, "breakpoint step must be ≥ 1, got %d", step)
		}
	}
	for _, e := range s.Breakpoints.Edges {
		if _, _, ok := splitEdge(e); !ok {
			return errors.Wrapf(ErrInvalidScenario, "breakpoint edge %q is not of the form A-B", e)
		}
	}

	return s.Graph.validate()
}

// validate checks the graph section. Explicit edge weights may be any
// integer; the generated weight range must be non-negative.
func (gs GraphSpec) validate() error {
	if len(gs.Edges) > 0 || len(gs.Vertices) > 0 {
		for i, e := range gs.Edges {
			if e.From == "" || e.To == "" {
				return errors.Wrapf(ErrInvalidScenario, "edge #%d: from and to are required", i)
			}
			if e.From == e.To {
				return errors.Wrapf(ErrInvalidScenario, "edge #%d: %s-%s is a loop", i, e.From, e.To)
			}
		}
		return nil
	}

	if gs.MinWeight < 0 || gs.MaxWeight < gs.MinWeight {
		return errors.Wrapf(ErrInvalidScenario, "weights: require 0 ≤ minWeight ≤ maxWeight, got %d..%d",
			gs.MinWeight, gs.MaxWeight)
	}
	switch gs.Generator {
	case GeneratorGrid:
		if gs.Rows < 1 || gs.Cols < 1 {
			return errors.Wrapf(ErrInvalidScenario, "grid needs rows and cols ≥ 1, got %dx%d", gs.Rows, gs.Cols)
		}
	case GeneratorRandom:
		if gs.Probability < 0 || gs.Probability > 1 {
			return errors.Wrapf(ErrInvalidScenario, "probability %.3f not in [0,1]", gs.Probability)
		}
		fallthrough
	case GeneratorPath, GeneratorCycle, GeneratorStar, GeneratorWheel, GeneratorComplete:
		if gs.N < 1 {
			return errors.Wrapf(ErrInvalidScenario, "%s needs n ≥ 1, got %d", gs.Generator, gs.N)
		}
	case "":
		return errors.Wrap(ErrInvalidScenario, "graph needs a generator or explicit edges")
	default:
		return errors.Wrapf(ErrInvalidScenario, "unknown generator %q (want one of %s)",
			gs.Generator, strings.Join(Generators(), ", "))
	}

	return nil
}

// splitEdge parses "A-B".
func splitEdge(s string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(strings.TrimSpace(s), "-")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)

	return from, to, ok && from != "" && to != ""
}
