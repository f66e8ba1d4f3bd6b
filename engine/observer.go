// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Observer receives the outbound observations of a run.
//
// Callbacks run synchronously on the worker goroutine (on the caller's for
// Execute), outside any engine lock, in this order per edge: EdgeVisited, then
// EdgeSettled, before the next edge is fetched. A slow observer slows the run.
// Observers may call State, Result, Pause, Resume and Step, but must not call
// Reset, which waits for the worker to exit.
type Observer interface {
	StateChanged(run uuid.UUID, s State)
	EdgeVisited(ev EdgeEvent)
	EdgeSettled(ev EdgeEvent)
	Completed(res *Result)
}

// ObserverFuncs adapts optional callbacks to Observer; nil fields are skipped.
type ObserverFuncs struct {
	OnState    func(run uuid.UUID, s State)
	OnVisit    func(ev EdgeEvent)
	OnSettle   func(ev EdgeEvent)
	OnComplete func(res *Result)
}

var _ Observer = ObserverFuncs{}

func (f ObserverFuncs) StateChanged(run uuid.UUID, s State) {
	if f.OnState != nil {
		f.OnState(run, s)
	}
}

func (f ObserverFuncs) EdgeVisited(ev EdgeEvent) {
	if f.OnVisit != nil {
		f.OnVisit(ev)
	}
}

func (f ObserverFuncs) EdgeSettled(ev EdgeEvent) {
	if f.OnSettle != nil {
		f.OnSettle(ev)
	}
}

func (f ObserverFuncs) Completed(res *Result) {
	if f.OnComplete != nil {
		f.OnComplete(res)
	}
}

// LogObserver writes every observation to a logrus logger: state changes and
// completion at Info (Warn for abnormal completion), edge steps at Debug.
type LogObserver struct {
	Log logrus.FieldLogger
}

// NewLogObserver returns a LogObserver; nil selects logrus.StandardLogger().
func NewLogObserver(log logrus.FieldLogger) *LogObserver {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &LogObserver{Log: log}
}

func (l *LogObserver) StateChanged(run uuid.UUID, s State) {
	l.Log.WithFields(logrus.Fields{"run": run, "state": s}).Info("state changed")
}

func (l *LogObserver) EdgeVisited(ev EdgeEvent) {
	l.edge(ev).Debug("edge visited")
}

func (l *LogObserver) EdgeSettled(ev EdgeEvent) {
	l.edge(ev).Debug("edge settled")
}

func (l *LogObserver) Completed(res *Result) {
	entry := l.Log.WithFields(logrus.Fields{
		"algorithm":  res.Algorithm,
		"run":        res.Run,
		"accepted":   len(res.Accepted),
		"rejected":   len(res.Rejected),
		"weight":     res.TotalWeight,
		"components": res.Components,
	})
	if res.Abnormal() {
		entry.WithError(res.Err).Warn("run could not complete")
		return
	}
	entry.Info("run completed")
}

func (l *LogObserver) edge(ev EdgeEvent) *logrus.Entry {
	return l.Log.WithFields(logrus.Fields{
		"algorithm": ev.Algorithm,
		"run":       ev.Run,
		"step":      ev.Step,
		"edge":      ev.Edge.String(),
		"weight":    ev.Edge.Weight,
		"outcome":   ev.Outcome.String(),
	})
}

// notify* fan an observation out to a snapshot of observers.

func notifyState(obs []Observer, run uuid.UUID, s State) {
	for _, o := range obs {
		o.StateChanged(run, s)
	}
}

func notifyVisited(obs []Observer, ev EdgeEvent) {
	for _, o := range obs {
		o.EdgeVisited(ev)
	}
}

func notifySettled(obs []Observer, ev EdgeEvent) {
	for _, o := range obs {
		o.EdgeSettled(ev)
	}
}

func notifyCompleted(obs []Observer, res *Result) {
	for _, o := range obs {
		o.Completed(res)
	}
}
