// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// Methods lists the accepted algorithm names.
func Methods() []string { return []string{MethodKruskal, MethodPrim} }

// New selects a variant by name: MethodKruskal or MethodPrim.
// Returns ErrUnknownMethod otherwise.
func New(method string, g *core.Graph, opts ...Option) (*Runner, error) {
	switch method {
	case MethodKruskal:
		return NewKruskal(g, opts...)
	case MethodPrim:
		return NewPrim(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Compute runs the named algorithm to completion on the calling goroutine
// and returns its result. It is New followed by Execute.
func Compute(ctx context.Context, method string, g *core.Graph, opts ...Option) (*Result, error) {
	r, err := New(method, g, opts...)
	if err != nil {
		return nil, err
	}

	return r.Execute(ctx)
}
