package engine_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

// wedge is a fixture edge between named vertices.
type wedge struct {
	from, to string
	weight   int64
}

// fixture builds a graph over the given names (in order) and edges (in order).
func fixture(t testing.TB, names []string, edges []wedge) (*core.Graph, map[string]*core.Vertex) {
	t.Helper()
	g := core.NewGraph()
	vs := make(map[string]*core.Vertex, len(names))
	for _, n := range names {
		vs[n] = core.NewVertex(n, 0, 0)
		g.Add(vs[n])
	}
	for _, e := range edges {
		_, err := g.Connect(vs[e.from], vs[e.to], e.weight)
		require.NoError(t, err)
	}

	return g, vs
}

// scenario is the four-vertex graph whose MST is A-B, B-C, C-D (weight 6).
func scenario(t testing.TB) (*core.Graph, map[string]*core.Vertex) {
	return fixture(t, []string{"A", "B", "C", "D"}, []wedge{
		{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}, {"A", "D", 4}, {"A", "C", 5},
	})
}

func quietLogger() logrus.FieldLogger {
	log, _ := logtest.NewNullLogger()
	return log
}

// newRunner builds the named variant with a silent logger plus opts.
func newRunner(t testing.TB, method string, g *core.Graph, opts ...engine.Option) *engine.Runner {
	t.Helper()
	r, err := engine.New(method, g, append([]engine.Option{engine.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)

	return r
}

func edgeNames(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}

	return out
}

// recorder is an Observer that keeps every observation.
type recorder struct {
	mu      sync.Mutex
	states  []engine.State
	visited []engine.EdgeEvent
	settled []engine.EdgeEvent
	results []*engine.Result
	trace   []string
}

func (r *recorder) StateChanged(_ uuid.UUID, s engine.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
	r.trace = append(r.trace, "state "+s.String())
}

func (r *recorder) EdgeVisited(ev engine.EdgeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visited = append(r.visited, ev)
	r.trace = append(r.trace, "visit "+ev.Edge.String())
}

func (r *recorder) EdgeSettled(ev engine.EdgeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled = append(r.settled, ev)
	r.trace = append(r.trace, ev.Outcome.String()+" "+ev.Edge.String())
}

func (r *recorder) Completed(res *engine.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	r.trace = append(r.trace, "completed")
}

func (r *recorder) count(s engine.State) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.states {
		if got == s {
			n++
		}
	}

	return n
}

func (r *recorder) numVisited() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visited)
}

func (r *recorder) numSettled() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.settled)
}

func (r *recorder) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.trace...)
}

// randomGraph returns a simple graph with 2..6 vertices and up to 10 edges.
// distinct selects pairwise-distinct weights; otherwise weights are 1..3.
func randomGraph(t testing.TB, rng *rand.Rand, distinct bool) *core.Graph {
	t.Helper()
	var f core.VertexFactory
	n := 2 + rng.Intn(5)
	g := core.NewGraph()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = f.NewVertex()
		g.Add(vs[i])
	}

	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	m := len(pairs)
	if m > 10 {
		m = 10
	}
	m = rng.Intn(m + 1)
	weights := rng.Perm(m)
	for i := 0; i < m; i++ {
		w := int64(weights[i] + 1)
		if !distinct {
			w = int64(1 + rng.Intn(3))
		}
		_, err := g.Connect(vs[pairs[i][0]], vs[pairs[i][1]], w)
		require.NoError(t, err)
	}

	return g
}

// bruteForceMSF enumerates every edge subset and returns the minimum weight
// of a spanning forest and one subset achieving it.
func bruteForceMSF(g *core.Graph) (int64, []*core.Edge) {
	vs := g.Vertices()
	es := g.Edges()
	idx := make(map[*core.Vertex]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}

	find := func(parent []int, i int) int {
		for parent[i] != i {
			i = parent[i]
		}
		return i
	}
	// forest size = V - components
	parent := make([]int, len(vs))
	for i := range parent {
		parent[i] = i
	}
	target := 0
	for _, e := range es {
		a, b := find(parent, idx[e.V1]), find(parent, idx[e.V2])
		if a != b {
			parent[a] = b
			target++
		}
	}

	best := int64(-1)
	var bestSet []*core.Edge
	for mask := 0; mask < 1<<len(es); mask++ {
		for i := range parent {
			parent[i] = i
		}
		var (
			set    []*core.Edge
			weight int64
			cyclic bool
		)
		for i, e := range es {
			if mask&(1<<i) == 0 {
				continue
			}
			a, b := find(parent, idx[e.V1]), find(parent, idx[e.V2])
			if a == b {
				cyclic = true
				break
			}
			parent[a] = b
			set = append(set, e)
			weight += e.Weight
		}
		if cyclic || len(set) != target {
			continue
		}
		if best < 0 || weight < best {
			best, bestSet = weight, set
		}
	}

	return best, bestSet
}

// assertMarksClear checks that every vertex and edge is back to MarkNone.
func assertMarksClear(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, v := range g.Vertices() {
		require.Equal(t, core.MarkNone, v.Mark(), "vertex %s", v)
	}
	for _, e := range g.Edges() {
		require.Equal(t, core.MarkNone, e.Mark(), "edge %s", e)
	}
}
