package engine_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

func silent() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// ExampleNewKruskal runs the four-vertex graph to completion.
// Edges A-D and A-C close cycles and are rejected.
func ExampleNewKruskal() {
	g := core.NewGraph()
	var f core.VertexFactory
	a, b, c, d := f.NewVertex(), f.NewVertex(), f.NewVertex(), f.NewVertex()
	g.Add(a, b, c, d)
	_, _ = g.Connect(a, b, 1)
	_, _ = g.Connect(b, c, 2)
	_, _ = g.Connect(c, d, 3)
	_, _ = g.Connect(a, d, 4)
	_, _ = g.Connect(a, c, 5)

	r, err := engine.NewKruskal(g, engine.WithLogger(silent()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := r.Execute(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("accepted:", res.Accepted)
	fmt.Println("rejected:", res.Rejected)
	fmt.Println("total:", res.TotalWeight, "spanning:", res.Spanning)
	// Output:
	// accepted: [A-B(1) B-C(2) C-D(3)]
	// rejected: [A-D(4) A-C(5)]
	// total: 6 spanning: true
}

// ExampleObserverFuncs prints every observation of a Prim run.
func ExampleObserverFuncs() {
	g := core.NewGraph()
	var f core.VertexFactory
	a, b, c := f.NewVertex(), f.NewVertex(), f.NewVertex()
	_, _ = g.Connect(a, b, 2)
	_, _ = g.Connect(b, c, 1)
	_, _ = g.Connect(a, c, 3)

	watch := engine.ObserverFuncs{
		OnState:  func(_ uuid.UUID, s engine.State) { fmt.Println("state", s) },
		OnVisit:  func(ev engine.EdgeEvent) { fmt.Println(ev.Step, "visit", ev.Edge) },
		OnSettle: func(ev engine.EdgeEvent) { fmt.Println(ev.Step, ev.Outcome, ev.Edge) },
		OnComplete: func(res *engine.Result) {
			fmt.Println(res)
		},
	}
	r, _ := engine.NewPrim(g, engine.WithLogger(silent()), engine.WithObserver(watch))
	_, _ = r.Execute(context.Background())
	// Output:
	// state RUNNING
	// 1 visit A-B(2)
	// 1 accepted A-B(2)
	// 2 visit B-C(1)
	// 2 accepted B-C(1)
	// 3 visit A-C(3)
	// 3 rejected A-C(3)
	// state COMPLETED
	// Prim: 2 accepted, 1 rejected, total weight 3, 1 component(s)
}
