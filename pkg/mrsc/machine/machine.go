package machine

import (
	"fmt"

	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

// Stepper is the decoupled machine variant: instead of successor graph
// values it emits step descriptors, which a driver applies uniformly
// through PartialCoGraph.Apply.
type Stepper[C, D, E any] interface {
	Steps(g *mrsc.PartialCoGraph[C, D, E]) ([]mrsc.Step[C, D, E], error)
}

// StepperFunc adapts a plain function to the Stepper interface.
type StepperFunc[C, D, E any] func(g *mrsc.PartialCoGraph[C, D, E]) ([]mrsc.Step[C, D, E], error)

func (f StepperFunc[C, D, E]) Steps(g *mrsc.PartialCoGraph[C, D, E]) ([]mrsc.Step[C, D, E], error) {
	return f(g)
}

type stepMachine[C, D, E any] struct {
	stepper Stepper[C, D, E]
}

// FromSteps lifts a Stepper into a Machine by applying each emitted
// step to the input graph, preserving order.
func FromSteps[C, D, E any](s Stepper[C, D, E]) mrsc.Machine[C, D, E] {
	return &stepMachine[C, D, E]{stepper: s}
}

func (m *stepMachine[C, D, E]) Steps(g *mrsc.PartialCoGraph[C, D, E]) ([]*mrsc.PartialCoGraph[C, D, E], error) {
	steps, err := m.stepper.Steps(g)
	if err != nil {
		return nil, err
	}
	out := make([]*mrsc.PartialCoGraph[C, D, E], 0, len(steps))
	for _, step := range steps {
		next, err := g.Apply(step)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", step, err)
		}
		out = append(out, next)
	}
	return out, nil
}

// Whistle carries the optional termination signal computed by a
// machine's Inspect policy. Blown means the signal fired and the
// configuration risks divergence.
type Whistle[W any] struct {
	Value W
	Blown bool
}

// Rebuilding is a candidate replacement configuration produced by a
// generalization policy.
type Rebuilding[C, E any] struct {
	Configuration C
	Extra         E
}

// GenericMultiMachine is the drive-or-fold-or-generalize control
// skeleton shared by supercompilation machines. Per active node it
// emits, in order of priority:
//
//  1. a single Prune if Unsafe holds on the active configuration,
//  2. a single Fold if FindFold locates a target,
//  3. otherwise the concatenation of the Drive continuations and the
//     Rebuildings wrapped as Rebuild steps, both computed under the
//     Whistle signal produced by Inspect.
//
// Rebuild candidates for which Dubious holds are filtered out, so a
// machine never regenerates a configuration it already rejected. A
// concrete machine supplies only the five policies; nil policies
// default to "never" (Unsafe, FindFold, Dubious) or "nothing"
// (Inspect, Drive, Rebuildings).
type GenericMultiMachine[C, D, E, W any] struct {
	Unsafe      func(conf C) bool
	FindFold    func(g *mrsc.PartialCoGraph[C, D, E]) (mrsc.Path, bool)
	Inspect     func(g *mrsc.PartialCoGraph[C, D, E]) Whistle[W]
	Drive       func(w Whistle[W], g *mrsc.PartialCoGraph[C, D, E]) []mrsc.Step[C, D, E]
	Rebuildings func(w Whistle[W], g *mrsc.PartialCoGraph[C, D, E]) []Rebuilding[C, E]
	Dubious     func(conf C) bool
}

func (m GenericMultiMachine[C, D, E, W]) Steps(g *mrsc.PartialCoGraph[C, D, E]) ([]mrsc.Step[C, D, E], error) {
	active := g.Active()
	if active == nil {
		return nil, fmt.Errorf("%w: machine stepped on a complete graph", mrsc.ErrInvalidGraphState)
	}
	if m.Unsafe != nil && m.Unsafe(active.Configuration()) {
		return []mrsc.Step[C, D, E]{mrsc.Prune[C, D, E]()}, nil
	}
	if m.FindFold != nil {
		if target, ok := m.FindFold(g); ok {
			return []mrsc.Step[C, D, E]{mrsc.Fold[C, D, E](target)}, nil
		}
	}
	var whistle Whistle[W]
	if m.Inspect != nil {
		whistle = m.Inspect(g)
	}
	var steps []mrsc.Step[C, D, E]
	if m.Drive != nil {
		steps = append(steps, m.Drive(whistle, g)...)
	}
	if m.Rebuildings != nil {
		for _, r := range m.Rebuildings(whistle, g) {
			if m.Dubious != nil && m.Dubious(r.Configuration) {
				continue
			}
			steps = append(steps, mrsc.Rebuild[C, D, E](r.Configuration, r.Extra))
		}
	}
	return steps, nil
}

// Machine returns the skeleton as a ready-to-drive Machine.
func (m GenericMultiMachine[C, D, E, W]) Machine() mrsc.Machine[C, D, E] {
	return FromSteps[C, D, E](m)
}
