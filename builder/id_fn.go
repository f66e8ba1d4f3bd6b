// Package builder provides internal helper functions and types
// for configuring vertex naming schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mststep/core"
)

// IDFn generates a vertex name from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// It matches the names handed out by core.VertexFactory.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	return core.ColumnName(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
