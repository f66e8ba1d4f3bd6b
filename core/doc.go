// Package core provides the mutable, thread-safe graph model that the
// spanning-tree engine runs on.
//
// The Graph G = (V,E) keeps:
//
//   - an ordered sequence of vertices (insertion order, unique by identity);
//   - an ordered sequence of undirected, integer-weighted edges between
//     distinct member vertices;
//   - per-element transient markers (Mark) that an algorithm sets while it
//     runs and that Reset clears.
//
// Identity
//
// A *Vertex is the vertex: two vertices with the same Name are still two
// vertices. ID (a uuid) is an opaque label for logs and observers.
//
// Core Methods:
//
//	// Vertex lifecycle
//	Add(vertices ...*Vertex)                     // O(k), duplicates ignored
//	Remove(v *Vertex) error                      // O(V+E), cascades to incident edges
//	RemoveAll(vs []*Vertex) error                // Remove for each
//
//	// Edge lifecycle
//	Connect(v1, v2 *Vertex, w int64) (*Edge, error)   // auto-adds endpoints
//	ConnectUnweighted(v1, v2 *Vertex) (*Edge, error)  // Weight = DefaultWeight
//	RemoveEdge(e *Edge) error                         // endpoints stay
//
//	// Ordering & markers
//	SortEdges()                                  // stable, ascending weight
//	Reset()                                      // every marker → MarkNone
//
//	// Queries
//	Vertices(), Edges(), Incident(v), HasVertex(v), HasEdge(e), Order(), Size(), Stats()
//
// Concurrency
//
// One sync.RWMutex guards the vertex and edge sequences; markers are atomic so
// a presentation goroutine may read them while the engine's worker writes
// them. Version() counts structural mutations: a running algorithm compares it
// against the value seen at run start to detect edits made while it runs.
// Structural edits during a run are a caller error; the graph stays
// consistent, but the run fails.
//
// Errors:
//
//	ErrNilVertex      - vertex pointer is nil.
//	ErrNilEdge        - edge pointer is nil.
//	ErrLoopNotAllowed - connect(v, v).
//	ErrVertexNotFound - vertex is not a member.
//	ErrEdgeNotFound   - edge is not in the edge sequence.
//
// Quick ASCII example:
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	D──3──C
//
//	g := core.NewGraph()
//	a, b := core.NewVertex("A", 0, 0), core.NewVertex("B", 1, 0)
//	_, _ = g.Connect(a, b, 1)
package core
