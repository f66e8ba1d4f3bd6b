// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming scheme: idx -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUnweighted connects every edge weight-less (unit cost).
func WithUnweighted() BuilderOption {
	return func(c *builderConfig) {
		c.weighted = false
	}
}

// WithRadius sets the ring radius used to lay out circular topologies.
// Panics if r <= 0.
func WithRadius(r int) BuilderOption {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSpacing sets the cell size used to lay out grids and paths.
// Panics if s <= 0.
func WithSpacing(s int) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn (the default).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithDefaultIDs sets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
