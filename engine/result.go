// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mststep/core"
)

// Result is the outcome of one run. It is written only by the worker and
// published when the run completes; treat it as read-only afterwards.
//
// For an abnormal run (Err != nil) Accepted holds the edges accepted before
// the failure point and nothing more is guaranteed.
type Result struct {
	Run       uuid.UUID
	Algorithm string

	// Accepted edges in acceptance order; a minimum spanning forest when the
	// run completed normally.
	Accepted []*core.Edge
	// Rejected edges in rejection order.
	Rejected []*core.Edge
	// Visited edges in visit order (accepted and rejected interleaved).
	Visited []*core.Edge

	TotalWeight int64
	// Components is the number of trees in the accepted forest, counting
	// isolated vertices.
	Components int
	// Spanning is true when the run completed normally and the forest is a
	// single tree.
	Spanning bool

	Err error
}

// Abnormal reports whether the run terminated with an error.
func (r *Result) Abnormal() bool { return r != nil && r.Err != nil }

// String summarizes the result in one line.
func (r *Result) String() string {
	if r == nil {
		return "<no result>"
	}
	if r.Abnormal() {
		return fmt.Sprintf("%s: run could not complete after %d edges: %v", r.Algorithm, len(r.Visited), r.Err)
	}

	return fmt.Sprintf("%s: %d accepted, %d rejected, total weight %d, %d component(s)",
		r.Algorithm, len(r.Accepted), len(r.Rejected), r.TotalWeight, r.Components)
}
