// Package engine holds the worklist loop shared by the public
// drivers. The search is a plain backtracking expansion of a pending
// list of immutable states: no goroutines, no locks, with branch order
// fixed by the front-insertion discipline below.
package engine

import (
	"fmt"

	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

// Worklist enumerates the completed and unworkable graphs reachable
// from a start state under a machine. Alternatives returned by the
// machine are prepended to the pending list, so OR-branches are
// explored depth-first and the first discovered result surfaces
// without materializing the rest of the space.
type Worklist[C, D, E any] struct {
	machine mrsc.Machine[C, D, E]
	tracer  mrsc.Tracer[C, D, E]
	pending []*mrsc.PartialCoGraph[C, D, E]
	stalls  int
}

type Option[C, D, E any] func(w *Worklist[C, D, E]) error

func WithTracer[C, D, E any](t mrsc.Tracer[C, D, E]) Option[C, D, E] {
	return func(w *Worklist[C, D, E]) error {
		if t == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		w.tracer = t
		return nil
	}
}

func defaults[C, D, E any]() []Option[C, D, E] {
	return []Option[C, D, E]{
		func(w *Worklist[C, D, E]) error {
			if w.tracer == nil {
				w.tracer = mrsc.DefaultTracer[C, D, E]{}
			}
			return nil
		},
	}
}

func New[C, D, E any](start *mrsc.PartialCoGraph[C, D, E], m mrsc.Machine[C, D, E], options ...Option[C, D, E]) (*Worklist[C, D, E], error) {
	if start == nil {
		return nil, fmt.Errorf("start graph must not be nil")
	}
	if m == nil {
		return nil, fmt.Errorf("machine must not be nil")
	}
	w := &Worklist[C, D, E]{
		machine: m,
		pending: []*mrsc.PartialCoGraph[C, D, E]{start},
	}
	for _, option := range append(options, defaults[C, D, E]()...) {
		if err := option(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Normalize expands the head of the pending list until it is complete
// or unworkable, or the list empties. A machine returning no
// successors for a live head stalls that branch; the branch is dropped
// and counted rather than looping silently.
func (w *Worklist[C, D, E]) Normalize() error {
	for len(w.pending) > 0 {
		head := w.pending[0]
		if head.IsComplete() || head.IsUnworkable() {
			return nil
		}
		w.tracer.Trace(position[C, D, E]{graph: head, pending: len(w.pending)})
		next, err := w.machine.Steps(head)
		if err != nil {
			return err
		}
		if len(next) == 0 {
			w.pending = w.pending[1:]
			w.stalls++
			continue
		}
		rest := w.pending[1:]
		pending := make([]*mrsc.PartialCoGraph[C, D, E], 0, len(next)+len(rest))
		pending = append(pending, next...)
		w.pending = append(pending, rest...)
	}
	return nil
}

// HasNext reports whether another completed or unworkable graph
// remains, normalizing as needed.
func (w *Worklist[C, D, E]) HasNext() (bool, error) {
	if err := w.Normalize(); err != nil {
		return false, err
	}
	return len(w.pending) > 0, nil
}

// Next pops the front graph. The caller distinguishes results by
// IsUnworkable. Calling Next on an exhausted worklist returns
// mrsc.ErrExhausted.
func (w *Worklist[C, D, E]) Next() (*mrsc.PartialCoGraph[C, D, E], error) {
	if err := w.Normalize(); err != nil {
		return nil, err
	}
	if len(w.pending) == 0 {
		return nil, mrsc.ErrExhausted
	}
	head := w.pending[0]
	w.pending = w.pending[1:]
	return head, nil
}

// Stalls counts branches dropped because the machine returned no
// successors for a live graph, a protocol violation worth surfacing.
func (w *Worklist[C, D, E]) Stalls() int {
	return w.stalls
}

type position[C, D, E any] struct {
	graph   *mrsc.PartialCoGraph[C, D, E]
	pending int
}

func (p position[C, D, E]) Graph() *mrsc.PartialCoGraph[C, D, E] {
	return p.graph
}

func (p position[C, D, E]) Pending() int {
	return p.pending
}
