// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mststep/bfs"
	"github.com/katalvlaran/mststep/core"
)

// stepper is the algorithm-specific part of a run. A fresh stepper is built
// per run and used only by the worker.
type stepper interface {
	// prepare snapshots whatever the algorithm needs from the graph.
	prepare() error
	// next returns the next edge to visit, or ok == false when done.
	next() (e *core.Edge, ok bool, err error)
	// settle decides the edge returned by the last next call.
	settle(e *core.Edge) (accepted bool, err error)
}

// Runner drives a stepper through the IDLE/RUNNING/PAUSED/COMPLETED state
// machine. It holds a non-owning reference to the graph; the caller keeps the
// graph alive and only edits its structure while the Runner is IDLE or
// COMPLETED.
//
// Suspension happens only between edges: at the boundary before an edge is
// visited (Pause, Step, StartAlgorithm(true)) and right after an edge is
// visited when the breakpoint predicate matches. Reset cancels the worker,
// which observes it at the next suspension point or boundary.
type Runner struct {
	graph      *core.Graph
	name       string
	newStepper func(*core.Graph) stepper
	log        logrus.FieldLogger

	// ctl serializes run start against Reset so a new run cannot begin
	// while Reset is still waiting for the old worker.
	ctl sync.Mutex

	mu        sync.Mutex // guards everything below
	state     State
	settings  Settings
	observers []Observer
	exec      *execution
}

var _ Algorithm = (*Runner)(nil)

// execution is the per-run state shared between the worker and commands.
type execution struct {
	id       uuid.UUID
	ctx      context.Context
	cancel   context.CancelFunc
	settings Settings
	resume   chan struct{} // buffered(1) release token
	done     chan struct{} // closed when the worker returns
	version  uint64        // graph.Version() at run start

	pauseReq bool    // guarded by Runner.mu
	result   *Result // written once before done is closed
}

func newRunner(g *core.Graph, name string, mk func(*core.Graph) stepper, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Runner{
		graph:      g,
		name:       name,
		newStepper: mk,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.settings.Validate(); err != nil {
		return nil, err
	}
	// lifecycle logging comes first so log lines precede adapter output
	r.observers = append([]Observer{NewLogObserver(r.log)}, r.observers...)

	return r, nil
}

// String returns the algorithm display name.
func (r *Runner) String() string { return r.name }

// Graph returns the graph the Runner operates on.
func (r *Runner) Graph() *core.Graph { return r.graph }

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Settings returns the settings the next run will use.
func (r *Runner) Settings() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.settings
}

// Configure replaces the settings for the next run.
// Returns ErrInvalidSettings or, while RUNNING/PAUSED, ErrBusy.
func (r *Runner) Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Active() {
		return ErrBusy
	}
	r.settings = s

	return nil
}

// Subscribe adds o to the observers of subsequent events. nil is ignored.
func (r *Runner) Subscribe(o Observer) {
	if o == nil {
		return
	}
	r.mu.Lock()
	r.observers = append(r.observers, o)
	r.mu.Unlock()
}

// Result returns the result of the completed run, or nil.
func (r *Runner) Result() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateCompleted || r.exec == nil {
		return nil
	}

	return r.exec.result
}

// Done returns a channel closed when the current run's worker has returned.
// With no run, the channel is already closed.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.exec == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}

	return r.exec.done
}

// Wait blocks until the current run ends or ctx is done.
// Returns ErrNoRun with no run, ErrAbandoned if Reset discarded it.
func (r *Runner) Wait(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	x := r.exec
	r.mu.Unlock()
	if x == nil {
		return nil, ErrNoRun
	}

	select {
	case <-x.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if x.result == nil {
		return nil, ErrAbandoned
	}

	return x.result, nil
}

// Execute runs the algorithm on the calling goroutine and returns its result.
// The run's error, if any, is both returned and recorded in Result.Err.
// Cancelling ctx terminates the run abnormally at the next boundary.
//
// Returns ErrBusy unless IDLE, ErrAbandoned if Reset is called meanwhile.
func (r *Runner) Execute(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	x, err := r.begin(ctx, false)
	if err != nil {
		return nil, err
	}
	res := r.run(x)
	if res == nil {
		return nil, ErrAbandoned
	}

	return res, res.Err
}

// StartAlgorithm begins a run on a new goroutine and returns immediately.
// With paused == true the run enters PAUSED before its first edge.
// Calling it while a run is active or completed leaves that run untouched
// and returns ErrBusy; use Reset first to start over.
func (r *Runner) StartAlgorithm(paused bool) error {
	x, err := r.begin(context.Background(), paused)
	if err != nil {
		r.log.WithField("algorithm", r.name).Debug("start ignored: ", err)
		return err
	}
	go r.run(x)

	return nil
}

// Pause requests a suspension at the next edge boundary. Ignored unless RUNNING.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateRunning {
		r.exec.pauseReq = true
	}
}

// Resume releases a PAUSED run, or withdraws a pending Pause/Step while
// RUNNING. Ignored otherwise.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StatePaused:
		r.exec.pauseReq = false
		r.exec.release()
	case StateRunning:
		r.exec.pauseReq = false
	}
}

// Step lets a PAUSED run process exactly one edge and pause again before the
// next one. While RUNNING it behaves like Pause. Ignored otherwise.
func (r *Runner) Step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StatePaused:
		r.exec.pauseReq = true
		r.exec.release()
	case StateRunning:
		r.exec.pauseReq = true
	}
}

// Reset abandons the current run, waits for its worker to exit, clears all
// graph markers and returns to IDLE. Safe from any state and any goroutine
// except an Observer callback.
func (r *Runner) Reset() {
	r.ctl.Lock()
	defer r.ctl.Unlock()

	r.mu.Lock()
	x, prev := r.exec, r.state
	r.exec = nil
	r.state = StateIdle
	obs := r.snapshotLocked()
	r.mu.Unlock()

	run := uuid.Nil
	if x != nil {
		run = x.id
		x.cancel()
		<-x.done
		if prev.Active() {
			r.log.WithFields(logrus.Fields{"algorithm": r.name, "run": run}).Info("run abandoned")
		}
	}
	r.graph.Reset()
	if prev != StateIdle {
		notifyState(obs, run, StateIdle)
	}
}

// begin moves IDLE → RUNNING and creates the execution.
func (r *Runner) begin(ctx context.Context, paused bool) (*execution, error) {
	r.ctl.Lock()
	defer r.ctl.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateIdle {
		return nil, fmt.Errorf("%w: state %s", ErrBusy, r.state)
	}

	cctx, cancel := context.WithCancel(ctx)
	x := &execution{
		id:       uuid.New(),
		ctx:      cctx,
		cancel:   cancel,
		settings: r.settings,
		resume:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		pauseReq: paused,
	}
	r.exec = x
	r.state = StateRunning

	return x, nil
}

// run is the worker body. It returns nil if the run was abandoned.
func (r *Runner) run(x *execution) *Result {
	defer close(x.done)
	defer x.cancel()

	if obs, ok := r.observersFor(x); ok {
		notifyState(obs, x.id, StateRunning)
	}

	res := &Result{Run: x.id, Algorithm: r.name}
	err := r.loop(x, res)

	comps, cerr := bfs.CountComponents(r.graph, bfs.WithEdgeSet(res.Accepted))
	if cerr == nil {
		res.Components = comps
	}
	res.Err = err
	res.Spanning = err == nil && comps == 1

	r.mu.Lock()
	if r.exec != x {
		r.mu.Unlock()
		return nil
	}
	x.result = res
	r.state = StateCompleted
	obs := r.snapshotLocked()
	r.mu.Unlock()

	notifyState(obs, x.id, StateCompleted)
	notifyCompleted(obs, res)

	return res
}

// loop processes edges until the stepper is exhausted or the run fails.
func (r *Runner) loop(x *execution, res *Result) error {
	x.version = r.graph.Version()
	s := r.newStepper(r.graph)
	if err := s.prepare(); err != nil {
		return err
	}

	for step := 1; ; step++ {
		if err := x.ctx.Err(); err != nil {
			return err
		}
		if err := r.consistent(x); err != nil {
			return err
		}
		e, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := r.boundary(x); err != nil {
			return err
		}
		if err := r.consistent(x); err != nil {
			return err
		}

		visit(e)
		res.Visited = append(res.Visited, e)
		ev := EdgeEvent{Run: x.id, Algorithm: r.name, Step: step, Edge: e, Outcome: OutcomePending}
		if obs, ok := r.observersFor(x); ok {
			notifyVisited(obs, ev)
		}

		if x.settings.Breakpoint != nil && x.settings.Breakpoint(e, step) {
			if err := r.breakpoint(x); err != nil {
				return err
			}
			if err := r.consistent(x); err != nil {
				return err
			}
		}

		accepted, err := s.settle(e)
		if err != nil {
			return err
		}
		if accepted {
			selectEdge(e)
			res.Accepted = append(res.Accepted, e)
			res.TotalWeight += e.Weight
			ev.Outcome = OutcomeAccepted
		} else {
			res.Rejected = append(res.Rejected, e)
			ev.Outcome = OutcomeRejected
		}
		if obs, ok := r.observersFor(x); ok {
			notifySettled(obs, ev)
		}

		if err := x.sleep(); err != nil {
			return err
		}
	}
}

// boundary honors a pending Pause, Step or startPaused before the next edge
// is touched. It is the only place that consumes pauseReq.
func (r *Runner) boundary(x *execution) error {
	r.mu.Lock()
	if r.exec != x {
		r.mu.Unlock()
		return context.Canceled
	}
	if !x.pauseReq {
		r.mu.Unlock()
		return nil
	}
	x.pauseReq = false

	return r.parkLocked(x)
}

// breakpoint parks between the visit and the settle of a matching edge.
// A pending Pause or Step stays pending for the next boundary.
func (r *Runner) breakpoint(x *execution) error {
	r.mu.Lock()
	if r.exec != x {
		r.mu.Unlock()
		return context.Canceled
	}

	return r.parkLocked(x)
}

// parkLocked enters PAUSED and blocks until released or cancelled.
// Called with Runner.mu held; releases it.
func (r *Runner) parkLocked(x *execution) error {
	// drop a token left over from a duplicate Resume
	select {
	case <-x.resume:
	default:
	}
	r.state = StatePaused
	obs := r.snapshotLocked()
	r.mu.Unlock()
	notifyState(obs, x.id, StatePaused)

	select {
	case <-x.resume:
	case <-x.ctx.Done():
		return x.ctx.Err()
	}

	r.mu.Lock()
	if r.exec != x {
		r.mu.Unlock()
		return context.Canceled
	}
	r.state = StateRunning
	obs = r.snapshotLocked()
	r.mu.Unlock()
	notifyState(obs, x.id, StateRunning)

	return nil
}

// consistent fails the run once the graph structure moved past the version
// recorded at run start.
func (r *Runner) consistent(x *execution) error {
	if v := r.graph.Version(); v != x.version {
		return fmt.Errorf("%w: version %d, run started at %d", ErrInconsistentGraph, v, x.version)
	}

	return nil
}

// observersFor returns the observer snapshot while x is the current run.
func (r *Runner) observersFor(x *execution) ([]Observer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.exec != x {
		return nil, false
	}

	return r.snapshotLocked(), true
}

func (r *Runner) snapshotLocked() []Observer {
	out := make([]Observer, len(r.observers))
	copy(out, r.observers)

	return out
}

// release hands the worker one resume token without blocking.
// Caller holds Runner.mu.
func (x *execution) release() {
	select {
	case x.resume <- struct{}{}:
	default:
	}
}

// sleep waits out the step delay; only cancellation cuts it short.
func (x *execution) sleep() error {
	if x.settings.StepDelay <= 0 {
		return nil
	}
	t := time.NewTimer(x.settings.StepDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-x.ctx.Done():
		return x.ctx.Err()
	}
}

// visit marks e and any unmarked endpoint as visited.
func visit(e *core.Edge) {
	e.SetMark(core.MarkVisited)
	for _, v := range [2]*core.Vertex{e.V1, e.V2} {
		if v.Mark() == core.MarkNone {
			v.SetMark(core.MarkVisited)
		}
	}
}

// selectEdge marks e and both endpoints as selected.
func selectEdge(e *core.Edge) {
	e.SetMark(core.MarkSelected)
	e.V1.SetMark(core.MarkSelected)
	e.V2.SetMark(core.MarkSelected)
}
