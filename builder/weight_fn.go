// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mststep/core"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided. It equals the unit cost of a weight-less edge.
const DefaultEdgeWeight = core.DefaultWeight

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to keep a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// SequentialWeightFn returns start, start+1, start+2, … on successive calls,
// giving every edge a distinct weight in emission order. The returned
// function is stateful and not safe for concurrent use.
// Panics if start < 0.
func SequentialWeightFn(start int64) WeightFn {
	if start < 0 {
		panic(fmt.Sprintf("SequentialWeightFn: start must be ≥ 0, got %d", start))
	}
	next := start

	return func(_ *rand.Rand) int64 {
		w := next
		next++
		return w
	}
}
