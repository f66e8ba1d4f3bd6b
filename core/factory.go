// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sync"
)

// ColumnName returns the spreadsheet-column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ColumnName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("core: ColumnName: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// VertexFactory hands out vertices with generated names A, B, …, Z, AA, AB, …
// It is safe for concurrent use.
type VertexFactory struct {
	mu   sync.Mutex
	next int
}

// NewVertex returns a vertex with the next generated name at (0, 0).
func (f *VertexFactory) NewVertex() *Vertex {
	return NewVertex(f.NextName(), 0, 0)
}

// NewVertexAt returns a vertex with the next generated name at (x, y).
func (f *VertexFactory) NewVertexAt(x, y int) *Vertex {
	return NewVertex(f.NextName(), x, y)
}

// NextName consumes and returns the next generated name.
func (f *VertexFactory) NextName() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	name := ColumnName(f.next)
	f.next++

	return name
}

// PeekName returns the name the next vertex will get without consuming it.
func (f *VertexFactory) PeekName() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return ColumnName(f.next)
}
