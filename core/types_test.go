// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/mststep/core"
	"github.com/stretchr/testify/assert"
)

func TestVertex_IdentityAndPosition(t *testing.T) {
	a := core.NewVertex("A", 3, 4)
	b := core.NewVertex("A", 3, 4)

	assert.NotEqual(t, a.ID, b.ID, "every vertex gets its own ID")
	assert.NotSame(t, a, b)

	x, y := a.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
	a.Move(10, 20)
	x, y = a.Position()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	assert.Equal(t, core.MarkNone, a.Mark())
	a.SetMark(core.MarkSelected)
	assert.Equal(t, core.MarkSelected, a.Mark())
}

func TestEdge_OtherAndFrom(t *testing.T) {
	g := core.NewGraph()
	a, b, c := core.NewVertex("A", 0, 0), core.NewVertex("B", 0, 0), core.NewVertex("C", 0, 0)
	e, err := g.Connect(a, b, 4)
	assert.NoError(t, err)

	assert.Same(t, b, e.Other(a))
	assert.Same(t, a, e.Other(b))
	assert.Nil(t, e.Other(c))
	assert.True(t, e.Touches(a))
	assert.False(t, e.Touches(c))

	d, ok := e.From(b)
	assert.True(t, ok)
	assert.Same(t, b, d.Origin)
	assert.Same(t, a, d.Target)
	assert.Same(t, e, d.Edge)
	assert.Equal(t, "B->A(4)", d.String())

	_, ok = e.From(c)
	assert.False(t, ok)
}

func TestMark_String(t *testing.T) {
	tests := []struct {
		mark core.Mark
		want string
	}{
		{core.MarkNone, "none"},
		{core.MarkVisited, "visited"},
		{core.MarkSelected, "selected"},
		{core.Mark(42), "mark(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mark.String())
	}
}

func TestVertexFactory_Names(t *testing.T) {
	var f core.VertexFactory

	assert.Equal(t, "A", f.PeekName())
	assert.Equal(t, "A", f.NewVertex().Name)
	assert.Equal(t, "B", f.NextName())
	v := f.NewVertexAt(5, 6)
	assert.Equal(t, "C", v.Name)
	x, y := v.Position()
	assert.Equal(t, 5, x)
	assert.Equal(t, 6, y)

	assert.Equal(t, "Z", core.ColumnName(25))
	assert.Equal(t, "AA", core.ColumnName(26))
	assert.Equal(t, "AZ", core.ColumnName(51))
	assert.Equal(t, "BA", core.ColumnName(52))
	assert.Panics(t, func() { core.ColumnName(-1) })
}
