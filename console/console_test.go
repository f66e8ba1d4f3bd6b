package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/console"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	var f core.VertexFactory
	a, b, c, d := f.NewVertex(), f.NewVertex(), f.NewVertex(), f.NewVertex()
	g.Add(a, b, c, d)
	for _, e := range []struct {
		u, v *core.Vertex
		w    int64
	}{{a, b, 1}, {b, c, 2}, {c, d, 3}, {a, d, 4}, {a, c, 5}} {
		_, err := g.Connect(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func kruskal(t *testing.T, g *core.Graph, opts ...engine.Option) *engine.Runner {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	r, err := engine.NewKruskal(g, append([]engine.Option{engine.WithLogger(log)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(r.Reset)

	return r
}

func TestRenderer_PlainRun(t *testing.T) {
	var buf bytes.Buffer
	g := square(t)
	r := kruskal(t, g, engine.WithObserver(console.NewRenderer(&buf, false, console.WithGraph(g))))

	_, err := r.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "#1   visit  A-B(1)")
	assert.Contains(t, out, "#1   accept A-B(1)")
	assert.Contains(t, out, "#4   reject A-D(4) closes A-B-C-D")
	assert.Contains(t, out, "#5   reject A-C(5) closes A-B-C")
	assert.Contains(t, out, "Kruskal")
	assert.Contains(t, out, "1 tree(s)")
	assert.NotContains(t, out, "\x1b[", "no escape codes without color")
}

// TestRenderer_ForgetsAfterReset checks a new run does not inherit the
// accepted edges of an abandoned one.
func TestRenderer_ForgetsAfterReset(t *testing.T) {
	var buf bytes.Buffer
	g := square(t)
	r := kruskal(t, g, engine.WithObserver(console.NewRenderer(&buf, false, console.WithGraph(g))))

	_, err := r.Execute(context.Background())
	require.NoError(t, err)
	r.Reset()
	buf.Reset()

	_, err = r.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "closes A-B-C-D"))
}

func TestRenderer_Colored(t *testing.T) {
	var buf bytes.Buffer
	r := kruskal(t, square(t), engine.WithObserver(console.NewRenderer(&buf, true)))

	_, err := r.Execute(context.Background())
	require.NoError(t, err)
	// escape codes depend on the environment (NO_COLOR, TERM)
	assert.Contains(t, buf.String(), "A-C(5)")
	assert.Contains(t, buf.String(), "COMPLETED")
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	console.RenderSummary(&buf, nil, false)
	assert.Equal(t, "no result\n", buf.String())

	g := square(t)
	res, err := kruskal(t, g).Execute(context.Background())
	require.NoError(t, err)

	buf.Reset()
	console.RenderSummary(&buf, res, false)
	out := buf.String()
	for _, want := range []string{"EDGE", "WEIGHT", "OUTCOME", "A-B", "accepted", "A-D", "rejected", "Total", "6"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	console.RenderSummary(&buf, &engine.Result{Algorithm: "Prim", Err: engine.ErrInconsistentGraph}, false)
	assert.Contains(t, buf.String(), "graph changed during run")
}

// TestSession_StepThrough drives a run edge by edge through commands.
func TestSession_StepThrough(t *testing.T) {
	var visited, settled atomic.Int32
	r := kruskal(t, square(t), engine.WithObserver(engine.ObserverFuncs{
		OnVisit:  func(engine.EdgeEvent) { visited.Add(1) },
		OnSettle: func(engine.EdgeEvent) { settled.Add(1) },
	}))
	var out bytes.Buffer
	s := console.NewSession(r, console.WithOutput(&out))

	paused := func() bool { return r.State() == engine.StatePaused }

	require.NoError(t, s.Exec("next"))
	require.Eventually(t, paused, time.Second, time.Millisecond, "idle next starts paused")
	assert.EqualValues(t, 0, settled.Load())

	for i := int32(1); i <= 2; i++ {
		require.NoError(t, s.Exec("n"))
		require.Eventually(t, func() bool { return paused() && settled.Load() == i }, time.Second, time.Millisecond)
		assert.Equal(t, i, visited.Load(), "one press visits and settles one edge")
	}

	require.NoError(t, s.Exec("c"))
	_, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, settled.Load())

	require.NoError(t, s.Exec("state"))
	assert.Contains(t, out.String(), "Kruskal COMPLETED")
	assert.Contains(t, out.String(), "total weight 6")

	require.NoError(t, s.Exec("start"))
	require.Eventually(t, paused, time.Second, time.Millisecond, "start resets and opens paused")
	assert.Nil(t, r.Result())

	require.NoError(t, s.Exec("reset"))
	assert.Equal(t, engine.StateIdle, r.State())
}

func TestSession_ContinueFromIdle(t *testing.T) {
	r := kruskal(t, square(t))
	s := console.NewSession(r, console.WithStartPaused(false))

	require.NoError(t, s.Exec("continue"))
	res, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 6, res.TotalWeight)

	require.NoError(t, s.Exec("start"))
	res, err = r.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Spanning)
}

func TestSession_Commands(t *testing.T) {
	var out bytes.Buffer
	s := console.NewSession(kruskal(t, square(t)), console.WithOutput(&out))

	require.NoError(t, s.Exec("   "))
	require.NoError(t, s.Exec("help"))
	assert.Contains(t, out.String(), "next|n")
	assert.Contains(t, out.String(), "quit|q|exit")

	assert.ErrorContains(t, s.Exec("jump"), `unknown command "jump"`)
	assert.True(t, console.IsQuit(s.Exec("Q")))
	require.NoError(t, s.Exec("pause"), "pause while idle is ignored")
}

// TestSession_RunScripted feeds a command script through the line editor.
func TestSession_RunScripted(t *testing.T) {
	var out bytes.Buffer
	r := kruskal(t, square(t))
	script := "continue\nbogus\nquit\nstate\n"
	log, hook := logtest.NewNullLogger()
	s := console.NewSession(r,
		console.WithInput(io.NopCloser(strings.NewReader(script))),
		console.WithOutput(&out),
		console.WithSessionLogger(log),
	)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.NotContains(t, out.String(), "Kruskal COMPLETED", "nothing runs after quit")
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "command failed", hook.LastEntry().Message)
	assert.Equal(t, engine.StateIdle, r.State(), "the session resets the engine on exit")
}
