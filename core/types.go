// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, DirectedEdge, Mark, sentinel errors and the NewGraph constructor.
// Policy:
//   - Identity is pointer identity; ID (uuid) exists for logs and observers only.
//   - Transient markers are atomic so a renderer may read them while a worker writes them.
//   - Structure (vertex/edge sequences) is guarded by Graph.mu.

package core

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNilEdge indicates that a nil *Edge was passed where an edge is required.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrLoopNotAllowed indicates connect(v, v); edge endpoints must be distinct.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a vertex absent from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge absent from the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// DefaultWeight is the weight given to edges created by ConnectUnweighted.
// Algorithms read Edge.Weight only, so unweighted edges behave as unit-cost edges.
const DefaultWeight int64 = 1

// Mark is a transient algorithm-state marker on a vertex or an edge.
// The engine sets marks while it runs; Graph.Reset restores MarkNone.
type Mark uint32

const (
	// MarkNone is the neutral state.
	MarkNone Mark = iota
	// MarkVisited means the algorithm has inspected the element.
	MarkVisited
	// MarkSelected means the element belongs to the spanning tree built so far.
	MarkSelected
)

// String returns a lower-case name of the mark.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkVisited:
		return "visited"
	case MarkSelected:
		return "selected"
	default:
		return fmt.Sprintf("mark(%d)", uint32(m))
	}
}

// Vertex is a node of the graph.
//
// Two vertices are the same vertex only if they are the same pointer; Name is
// a display label and may repeat. X and Y are presentation coordinates that no
// algorithm reads.
type Vertex struct {
	// ID is an opaque identifier, stable for the lifetime of the vertex.
	ID uuid.UUID

	// Name is the display label.
	Name string

	posMu sync.Mutex // guards x, y
	x, y  int

	mark atomic.Uint32
}

// NewVertex allocates a vertex with a fresh ID at the given coordinates.
func NewVertex(name string, x, y int) *Vertex {
	return &Vertex{ID: uuid.New(), Name: name, x: x, y: y}
}

// Position returns the presentation coordinates.
func (v *Vertex) Position() (x, y int) {
	v.posMu.Lock()
	defer v.posMu.Unlock()

	return v.x, v.y
}

// Move sets the presentation coordinates.
func (v *Vertex) Move(x, y int) {
	v.posMu.Lock()
	v.x, v.y = x, y
	v.posMu.Unlock()
}

// Mark returns the current transient marker.
func (v *Vertex) Mark() Mark { return Mark(v.mark.Load()) }

// SetMark replaces the transient marker.
func (v *Vertex) SetMark(m Mark) { v.mark.Store(uint32(m)) }

// String returns the display name.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return v.Name
}

// Edge is an undirected connection between two distinct vertices.
//
// V1, V2, Weight and Weighted are fixed at creation. Edges order by Weight
// ascending for algorithm purposes (see Graph.SortEdges).
type Edge struct {
	// ID is an opaque identifier, stable for the lifetime of the edge.
	ID uuid.UUID

	// V1 and V2 are the endpoints; their order carries no meaning.
	V1, V2 *Vertex

	// Weight is the cost of the edge.
	Weight int64

	// Weighted is false for edges created by ConnectUnweighted.
	Weighted bool

	mark atomic.Uint32
}

// Mark returns the current transient marker.
func (e *Edge) Mark() Mark { return Mark(e.mark.Load()) }

// SetMark replaces the transient marker.
func (e *Edge) SetMark(m Mark) { e.mark.Store(uint32(m)) }

// Touches reports whether v is one of the endpoints.
func (e *Edge) Touches(v *Vertex) bool { return e.V1 == v || e.V2 == v }

// Other returns the endpoint opposite to v, or nil if v is not an endpoint.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		return nil
	}
}

// From returns the projection of e that starts at origin.
// ok is false when origin is not an endpoint of e.
func (e *Edge) From(origin *Vertex) (d DirectedEdge, ok bool) {
	target := e.Other(origin)
	if target == nil {
		return DirectedEdge{}, false
	}

	return DirectedEdge{Origin: origin, Target: target, Edge: e}, true
}

// String renders the edge as "A-B(3)".
func (e *Edge) String() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s-%s(%d)", e.V1, e.V2, e.Weight)
}

// DirectedEdge is a read-only view of an Edge with a designated origin and target.
// It is used by traversal-style algorithms that walk away from a vertex.
type DirectedEdge struct {
	Origin *Vertex
	Target *Vertex
	Edge   *Edge
}

// Weight returns the weight of the underlying edge.
func (d DirectedEdge) Weight() int64 { return d.Edge.Weight }

// String renders the projection as "A->B(3)".
func (d DirectedEdge) String() string {
	return fmt.Sprintf("%s->%s(%d)", d.Origin, d.Target, d.Edge.Weight)
}

// Graph owns an ordered sequence of vertices and an ordered sequence of edges.
//
// Invariants:
//   - no vertex appears twice (identity);
//   - every edge's endpoints are members of the vertex sequence;
//   - Reset leaves structure untouched and every marker at MarkNone.
//
// mu guards vertices, members and edges. version counts structural mutations
// so a running algorithm can notice edits made behind its back.
type Graph struct {
	mu sync.RWMutex

	vertices []*Vertex
	members  map[*Vertex]struct{}
	edges    []*Edge

	version atomic.Uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{members: make(map[*Vertex]struct{})}
}
