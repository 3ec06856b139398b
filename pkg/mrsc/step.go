package mrsc

import "fmt"

// Step is the closed vocabulary of mutations applicable to the active
// node of a partial graph. The set of variants is fixed: Complete,
// Expand, Fold, Rebuild, Rollback and Prune. Applying a step never
// mutates the receiving graph; it yields a fresh value.
type Step[C, D, E any] interface {
	fmt.Stringer

	isStep()
}

// ChildSpec describes one child produced by an Expand step.
type ChildSpec[C, D, E any] struct {
	Configuration C
	Driving       D
	Extra         E
}

type CompleteStep[C, D, E any] struct{}

func (CompleteStep[C, D, E]) isStep() {}

func (CompleteStep[C, D, E]) String() string {
	return "complete"
}

// Complete returns the step that retires the active node as a
// terminal leaf.
func Complete[C, D, E any]() Step[C, D, E] {
	return CompleteStep[C, D, E]{}
}

type ExpandStep[C, D, E any] struct {
	Children []ChildSpec[C, D, E]
}

func (ExpandStep[C, D, E]) isStep() {}

func (s ExpandStep[C, D, E]) String() string {
	return fmt.Sprintf("expand(%d)", len(s.Children))
}

// Expand returns the step that drives the active node into the given
// children, in order. The active node becomes an internal node and the
// children join the frontier.
func Expand[C, D, E any](children ...ChildSpec[C, D, E]) Step[C, D, E] {
	return ExpandStep[C, D, E]{Children: children}
}

type FoldStep[C, D, E any] struct {
	Target Path
}

func (FoldStep[C, D, E]) isStep() {}

func (s FoldStep[C, D, E]) String() string {
	return fmt.Sprintf("fold(%s)", s.Target)
}

// Fold returns the step that retires the active node as a loopback
// leaf referring back to target. The target must already be among the
// completed nodes; this is a caller contract the engine does not
// check, and a violation only surfaces when a consumer later fails to
// resolve the loopback on the transposed graph.
func Fold[C, D, E any](target Path) Step[C, D, E] {
	return FoldStep[C, D, E]{Target: target}
}

type RebuildStep[C, D, E any] struct {
	Configuration C
	Extra         E
}

func (RebuildStep[C, D, E]) isStep() {}

func (RebuildStep[C, D, E]) String() string {
	return "rebuild"
}

// Rebuild returns the step that replaces the active node's
// configuration and extra info in place, leaving it at the head of
// the frontier for re-processing. This is how a generalization
// substitutes a safer configuration before driving continues.
func Rebuild[C, D, E any](conf C, extra E) Step[C, D, E] {
	return RebuildStep[C, D, E]{Configuration: conf, Extra: extra}
}

type RollbackStep[C, D, E any] struct {
	Ancestor      *CoNode[C, D, E]
	Configuration C
	Extra         E
}

func (RollbackStep[C, D, E]) isStep() {}

func (s RollbackStep[C, D, E]) String() string {
	return fmt.Sprintf("rollback(%s)", s.Ancestor.Path())
}

// Rollback returns the step that regeneralizes ancestor with the
// given configuration, discards its entire subtree, and reinserts the
// replacement at the head of the frontier. With no descendants built
// yet it degenerates to a Rebuild of that node.
func Rollback[C, D, E any](ancestor *CoNode[C, D, E], conf C, extra E) Step[C, D, E] {
	return RollbackStep[C, D, E]{Ancestor: ancestor, Configuration: conf, Extra: extra}
}

type PruneStep[C, D, E any] struct{}

func (PruneStep[C, D, E]) isStep() {}

func (PruneStep[C, D, E]) String() string {
	return "prune"
}

// Prune returns the step that marks the whole graph unworkable. The
// flag is sticky: the value is final and is reported to consumers as
// a discarded branch.
func Prune[C, D, E any]() Step[C, D, E] {
	return PruneStep[C, D, E]{}
}
