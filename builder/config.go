// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = ExcelColumnIDFn     ("A","B",…,"Z","AA",…)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • weighted = true
//   • radius   = DefaultRadius, spacing = DefaultSpacing (layout only)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex name strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; ignored when weighted == false.
	weightFn WeightFn
	// weighted=false connects with core.Graph.ConnectUnweighted.
	weighted bool

	// Layout: ring radius for circular topologies, cell size for grids.
	radius  int
	spacing int
}

// Layout defaults, in abstract canvas units.
const (
	DefaultRadius  = 200
	DefaultSpacing = 80
	layoutMargin   = 40
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
		weighted: true,
		radius:   DefaultRadius,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
