// SPDX-License-Identifier: MIT

// Package engine runs minimum-spanning-tree algorithms step by step so a
// presentation layer can watch, pause and single-step them.
//
// What
//
//   - Runner: the state machine IDLE → RUNNING ⇄ PAUSED → COMPLETED, with
//     Reset returning to IDLE from any state.
//   - NewKruskal: sorted edges and a disjoint set (package dsu).
//   - NewPrim: lazy Prim growing a forest from vertices in insertion order.
//   - Observer: state changes, each visited edge, each settlement and the
//     final Result, delivered on the worker goroutine.
//
// Control
//
//	r, _ := engine.NewKruskal(g, engine.WithSettings(engine.Settings{
//	    StepDelay:  250 * time.Millisecond,
//	    Breakpoint: engine.BreakAtWeights(5),
//	}))
//	r.Subscribe(renderer)
//	_ = r.StartAlgorithm(false) // worker goroutine; ErrBusy unless IDLE
//	r.Pause()                   // PAUSED at the next edge boundary
//	r.Step()                    // one edge, then PAUSED again
//	r.Resume()                  // RUNNING until the next breakpoint
//	res, _ := r.Wait(ctx)       // COMPLETED
//	r.Reset()                   // IDLE, graph markers cleared
//
// Commands that do not apply to the current state are ignored. Execute runs
// the same loop on the calling goroutine.
//
// Suspension points
//
// The worker blocks only between edges: before visiting an edge when a pause
// was requested, after marking an edge visited when the breakpoint predicate
// matches, and during the step delay. It never blocks inside a union-find
// operation. Reset cancels the run; the worker notices at the next of these
// points and exits without settling further edges.
//
// Graph edits
//
// The graph must not change structurally while a run is RUNNING or PAUSED.
// The Runner compares core.Graph.Version with the value taken at run start
// at every boundary and fails the run with ErrInconsistentGraph on any drift.
// The failed run still reaches COMPLETED; its Result carries the error and
// the edges accepted so far.
//
// Markers
//
// A visited edge and its unmarked endpoints get core.MarkVisited; an accepted
// edge and both endpoints get core.MarkSelected. Rejected edges stay visited.
package engine
