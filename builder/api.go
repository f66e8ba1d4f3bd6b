// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order ⇒ identical vertex names,
//     edge sequence, weights and layout positions.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices named by cfg.idFn, offset by the vertices already in g,
//     so composed constructors never reuse a name.
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a fixture to
// a graph that is being edited interactively.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
