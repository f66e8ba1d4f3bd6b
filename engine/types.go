// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mststep/core"
)

// Sentinel errors. Compare with errors.Is.
var (
	// ErrNilGraph is returned by constructors given a nil graph.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrBusy is returned when an operation needs an IDLE engine (Execute,
	// StartAlgorithm) or a non-active one (Configure).
	ErrBusy = errors.New("engine: run in progress")

	// ErrInvalidSettings is returned for settings that fail validation.
	ErrInvalidSettings = errors.New("engine: invalid settings")

	// ErrInconsistentGraph terminates a run whose graph was structurally
	// edited after the run started.
	ErrInconsistentGraph = errors.New("engine: graph changed during run")

	// ErrAbandoned is returned by Execute and Wait when Reset discarded the run.
	ErrAbandoned = errors.New("engine: run abandoned by reset")

	// ErrNoRun is returned by Wait when there is no run to wait for.
	ErrNoRun = errors.New("engine: no run started")

	// ErrUnknownMethod is returned by New for an unsupported algorithm name.
	ErrUnknownMethod = errors.New("engine: unknown algorithm")
)

// MethodKruskal selects Kruskal's algorithm (sorted edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects the lazy Prim variant (grow a forest with a min-heap).
const MethodPrim = "prim"

// State is the lifecycle phase of a Runner.
//
//	IDLE → RUNNING ⇄ PAUSED → COMPLETED,  any → IDLE via Reset.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

// String returns the upper-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateCompleted:
		return "COMPLETED"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Active reports whether a run is in flight (RUNNING or PAUSED).
func (s State) Active() bool { return s == StateRunning || s == StatePaused }

// Algorithm is the capability set a presentation adapter drives. Every
// variant (Kruskal, Prim) is a *Runner behind this interface.
type Algorithm interface {
	fmt.Stringer

	// Execute runs the whole algorithm on the calling goroutine.
	Execute(ctx context.Context) (*Result, error)
	// StartAlgorithm begins a run on its own goroutine, optionally paused
	// before the first edge.
	StartAlgorithm(paused bool) error
	// Pause suspends a RUNNING run at the next edge boundary.
	Pause()
	// Resume releases a PAUSED run.
	Resume()
	// Step releases a PAUSED run for exactly one edge.
	Step()
	// Reset abandons any run, clears graph markers and returns to IDLE.
	Reset()
	// Configure replaces the settings used by the next run.
	Configure(s Settings) error

	State() State
	Result() *Result
	Done() <-chan struct{}
	Wait(ctx context.Context) (*Result, error)
	Subscribe(o Observer)
}

// BreakpointFunc decides whether the run pauses after visiting e.
// step is the 1-based position of e in the visit order.
type BreakpointFunc func(e *core.Edge, step int) bool

// Settings are the per-run parameters handed to Configure.
type Settings struct {
	// StepDelay is slept after each settled edge. Zero disables it.
	StepDelay time.Duration

	// Breakpoint is optional; nil never pauses.
	Breakpoint BreakpointFunc
}

// Validate reports ErrInvalidSettings for a negative StepDelay.
func (s Settings) Validate() error {
	if s.StepDelay < 0 {
		return fmt.Errorf("%w: step delay %v is negative", ErrInvalidSettings, s.StepDelay)
	}

	return nil
}

// BreakAtSteps pauses at the given 1-based step numbers.
func BreakAtSteps(steps ...int) BreakpointFunc {
	set := make(map[int]struct{}, len(steps))
	for _, s := range steps {
		set[s] = struct{}{}
	}

	return func(_ *core.Edge, step int) bool {
		_, ok := set[step]
		return ok
	}
}

// BreakAtWeights pauses on every edge carrying one of the given weights.
func BreakAtWeights(weights ...int64) BreakpointFunc {
	set := make(map[int64]struct{}, len(weights))
	for _, w := range weights {
		set[w] = struct{}{}
	}

	return func(e *core.Edge, _ int) bool {
		_, ok := set[e.Weight]
		return ok
	}
}

// BreakOnEdges pauses on the given edges.
func BreakOnEdges(edges ...*core.Edge) BreakpointFunc {
	set := make(map[*core.Edge]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}

	return func(e *core.Edge, _ int) bool {
		_, ok := set[e]
		return ok
	}
}

// AnyBreakpoint combines predicates with logical OR. nil entries are skipped;
// if nothing remains the result is nil.
func AnyBreakpoint(fns ...BreakpointFunc) BreakpointFunc {
	var live []BreakpointFunc
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	if len(live) == 0 {
		return nil
	}

	return func(e *core.Edge, step int) bool {
		for _, fn := range live {
			if fn(e, step) {
				return true
			}
		}
		return false
	}
}

// Option configures a Runner at construction.
type Option func(*Runner)

// WithLogger sets the logger for lifecycle and per-edge entries.
// Default: logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSettings sets the initial settings. Invalid settings make the
// constructor fail with ErrInvalidSettings.
func WithSettings(s Settings) Option {
	return func(r *Runner) {
		r.settings = s
	}
}

// WithObserver subscribes o before the first run.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// Outcome is the settlement of a visited edge.
type Outcome int

const (
	// OutcomePending: visited, not yet settled.
	OutcomePending Outcome = iota
	// OutcomeAccepted: joined two components.
	OutcomeAccepted
	// OutcomeRejected: would have closed a cycle.
	OutcomeRejected
)

// String returns "pending", "accepted" or "rejected".
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// EdgeEvent describes one edge step of a run.
type EdgeEvent struct {
	Run       uuid.UUID
	Algorithm string
	Step      int // 1-based
	Edge      *core.Edge
	Outcome   Outcome
}
