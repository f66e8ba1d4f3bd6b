// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/dfs"
	"github.com/katalvlaran/mststep/engine"
)

// Renderer is an engine.Observer that prints one line per observation and a
// summary table when the run completes.
type Renderer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool

	// graph, when set, lets rejections name the cycle they would close.
	graph    *core.Graph
	run      uuid.UUID
	accepted []*core.Edge
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithGraph lets the renderer explain rejections by printing the path of
// already accepted edges joining the rejected edge's endpoints.
func WithGraph(g *core.Graph) RendererOption {
	return func(r *Renderer) { r.graph = g }
}

// NewRenderer writes to out; color enables ANSI colors.
func NewRenderer(out io.Writer, color bool, opts ...RendererOption) *Renderer {
	r := &Renderer{out: out, color: color}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Renderer) paint(c text.Colors, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *Renderer) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// StateChanged prints the new state with the short run ID.
func (r *Renderer) StateChanged(run uuid.UUID, s engine.State) {
	r.mu.Lock()
	if run != r.run || s == engine.StateIdle {
		r.run, r.accepted = run, nil
	}
	r.mu.Unlock()
	r.printf("%s %s %s\n", r.paint(text.Colors{text.FgHiBlue}, "●"), r.paint(stateColor(s), s.String()),
		r.paint(text.Colors{text.Faint}, shortID(run)))
}

// EdgeVisited prints the edge under consideration.
func (r *Renderer) EdgeVisited(ev engine.EdgeEvent) {
	r.printf("  #%-3d %s %s\n", ev.Step, r.paint(text.Colors{text.FgYellow}, "visit "), ev.Edge)
}

// EdgeSettled prints the decision for the edge.
func (r *Renderer) EdgeSettled(ev engine.EdgeEvent) {
	if ev.Outcome == engine.OutcomeAccepted {
		r.mu.Lock()
		r.accepted = append(r.accepted, ev.Edge)
		r.mu.Unlock()
		r.printf("  #%-3d %s %s\n", ev.Step, r.paint(text.Colors{text.FgGreen, text.Bold}, "accept"), ev.Edge)
		return
	}
	r.printf("  #%-3d %s %s%s\n", ev.Step, r.paint(text.Colors{text.FgRed}, "reject"), ev.Edge, r.explain(ev.Edge))
}

// explain renders " closes A-B-C" for a rejected edge whose endpoints are
// already joined by accepted edges, or "" when that cannot be shown.
func (r *Renderer) explain(e *core.Edge) string {
	r.mu.Lock()
	g, accepted := r.graph, append([]*core.Edge(nil), r.accepted...)
	r.mu.Unlock()
	if g == nil {
		return ""
	}
	path, err := dfs.Path(g, e.V1, e.V2, dfs.WithEdgeSet(accepted))
	if err != nil || len(path) == 0 {
		return ""
	}

	names := []string{e.V1.Name}
	at := e.V1
	for _, step := range path {
		at = step.Other(at)
		names = append(names, at.Name)
	}

	return r.paint(text.Colors{text.Faint}, " closes "+strings.Join(names, "-"))
}

// Completed prints the summary table.
func (r *Renderer) Completed(res *engine.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	RenderSummary(r.out, res, r.color)
}

func stateColor(s engine.State) text.Colors {
	switch s {
	case engine.StateRunning:
		return text.Colors{text.FgHiGreen}
	case engine.StatePaused:
		return text.Colors{text.FgHiYellow}
	case engine.StateCompleted:
		return text.Colors{text.FgHiCyan, text.Bold}
	default:
		return text.Colors{text.FgWhite}
	}
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// RenderSummary writes a table of every visited edge with its outcome,
// followed by the totals. An abnormal result gets an error row.
func RenderSummary(out io.Writer, res *engine.Result, color bool) {
	if res == nil {
		_, _ = fmt.Fprintln(out, "no result")
		return
	}

	accepted := make(map[string]bool, len(res.Accepted))
	for _, e := range res.Accepted {
		accepted[e.ID.String()] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	if !color {
		t.SetStyle(table.StyleLight)
	}
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle(res.Algorithm)
	t.AppendHeader(table.Row{"#", "Edge", "Weight", "Outcome"})
	for i, e := range res.Visited {
		outcome := "rejected"
		if accepted[e.ID.String()] {
			outcome = "accepted"
		}
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%s-%s", e.V1, e.V2), e.Weight, outcome})
	}
	t.AppendFooter(table.Row{"", "Total", res.TotalWeight, fmt.Sprintf("%d tree(s)", res.Components)})
	if res.Abnormal() {
		t.AppendFooter(table.Row{"", "Error", "", res.Err.Error()})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// SyncWriter serializes writes to w so the renderer (on the worker
// goroutine) and the line editor can share one output.
func SyncWriter(w io.Writer) io.Writer {
	if _, ok := w.(*syncWriter); ok {
		return w
	}
	return &syncWriter{w: w}
}
