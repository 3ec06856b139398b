package mrsc

import "fmt"

// CoEdge connects a node to its parent, labeled with the driving info
// that derived the child configuration.
type CoEdge[C, D, E any] struct {
	parent  *CoNode[C, D, E]
	driving D
}

func (e *CoEdge[C, D, E]) Parent() *CoNode[C, D, E] {
	return e.parent
}

func (e *CoEdge[C, D, E]) Driving() D {
	return e.driving
}

// CoNode is a node in parent-pointer form. A CoNode is immutable once
// created; Rebuild and Rollback swap a node out for a sibling value at
// the same co-path rather than changing it. The incoming-edge chain up
// to the root is shared, read-only structure, so independently growing
// subtrees may reference a common ancestor prefix safely.
type CoNode[C, D, E any] struct {
	conf   C
	extra  E
	in     *CoEdge[C, D, E]
	base   Path
	coPath CoPath
}

func (n *CoNode[C, D, E]) Configuration() C {
	return n.conf
}

func (n *CoNode[C, D, E]) Extra() E {
	return n.extra
}

// In returns the incoming edge, nil only for the root.
func (n *CoNode[C, D, E]) In() *CoEdge[C, D, E] {
	return n.in
}

// Base returns the loopback target, if this node is a folded leaf.
func (n *CoNode[C, D, E]) Base() (Path, bool) {
	if n.base == nil {
		return nil, false
	}
	return n.base, true
}

func (n *CoNode[C, D, E]) CoPath() CoPath {
	return n.coPath
}

func (n *CoNode[C, D, E]) Path() Path {
	return n.coPath.Path()
}

// Ancestors returns the chain of ancestors, nearest first, ending at
// the root.
func (n *CoNode[C, D, E]) Ancestors() []*CoNode[C, D, E] {
	var out []*CoNode[C, D, E]
	for e := n.in; e != nil; e = e.parent.in {
		out = append(out, e.parent)
	}
	return out
}

// GraphOption configures a fresh partial graph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	breadthFirst bool
}

// BreadthFirst makes Expand insert new children at the back of the
// frontier instead of the front. Front insertion (the default) yields
// a depth-first traversal, back insertion a breadth-first one; this
// insertion policy is the only knob controlling traversal order. It
// changes which completed graph is discovered first, never the
// eventual completed and pruned sets.
func BreadthFirst() GraphOption {
	return func(c *graphConfig) {
		c.breadthFirst = true
	}
}

// PartialCoGraph is a search state: the work-in-progress graph built
// so far. It holds the ordered frontier of incomplete leaves (the head
// is the active node processed next) and the two completed partitions.
// Values are never mutated; every Apply returns a fresh one and the
// search loop threads the current value forward.
//
// Invariants: completeLeaves is a subset of completeNodes, and the
// co-paths across all three collections are pairwise distinct. The
// unworkable flag is sticky: once set the value is final.
type PartialCoGraph[C, D, E any] struct {
	incompleteLeaves []*CoNode[C, D, E]
	completeLeaves   []*CoNode[C, D, E]
	completeNodes    []*CoNode[C, D, E]
	unworkable       bool
	breadthFirst     bool
}

// NewPartialCoGraph returns the initial search state for a start
// configuration: a lone root node forming the whole frontier.
func NewPartialCoGraph[C, D, E any](conf C, extra E, options ...GraphOption) *PartialCoGraph[C, D, E] {
	cfg := graphConfig{}
	for _, option := range options {
		option(&cfg)
	}
	root := &CoNode[C, D, E]{conf: conf, extra: extra}
	return &PartialCoGraph[C, D, E]{
		incompleteLeaves: []*CoNode[C, D, E]{root},
		breadthFirst:     cfg.breadthFirst,
	}
}

// IsComplete reports whether the frontier is empty.
func (g *PartialCoGraph[C, D, E]) IsComplete() bool {
	return len(g.incompleteLeaves) == 0
}

// IsUnworkable reports whether the graph has been pruned.
func (g *PartialCoGraph[C, D, E]) IsUnworkable() bool {
	return g.unworkable
}

// Active returns the head of the frontier, nil when the graph is
// complete.
func (g *PartialCoGraph[C, D, E]) Active() *CoNode[C, D, E] {
	if len(g.incompleteLeaves) == 0 {
		return nil
	}
	return g.incompleteLeaves[0]
}

// IncompleteLeaves returns the frontier. The returned slice must not
// be modified.
func (g *PartialCoGraph[C, D, E]) IncompleteLeaves() []*CoNode[C, D, E] {
	return g.incompleteLeaves
}

// CompleteLeaves returns the terminal leaves, folded or childless.
// The returned slice must not be modified.
func (g *PartialCoGraph[C, D, E]) CompleteLeaves() []*CoNode[C, D, E] {
	return g.completeLeaves
}

// CompleteNodes returns every node moved out of the frontier,
// internal branch nodes included. The returned slice must not be
// modified.
func (g *PartialCoGraph[C, D, E]) CompleteNodes() []*CoNode[C, D, E] {
	return g.completeNodes
}

// Apply produces the successor state resulting from applying step to
// the active node. Applying a step to a complete or unworkable graph
// is a protocol violation and returns ErrInvalidGraphState.
func (g *PartialCoGraph[C, D, E]) Apply(step Step[C, D, E]) (*PartialCoGraph[C, D, E], error) {
	if g.unworkable || len(g.incompleteLeaves) == 0 {
		return nil, fmt.Errorf("%w: cannot apply %s without an active node", ErrInvalidGraphState, step)
	}
	active := g.incompleteLeaves[0]
	switch s := step.(type) {
	case CompleteStep[C, D, E]:
		return g.retire(active), nil

	case ExpandStep[C, D, E]:
		children := make([]*CoNode[C, D, E], len(s.Children))
		for i, ch := range s.Children {
			children[i] = &CoNode[C, D, E]{
				conf:   ch.Configuration,
				extra:  ch.Extra,
				in:     &CoEdge[C, D, E]{parent: active, driving: ch.Driving},
				coPath: active.coPath.Child(i),
			}
		}
		rest := g.incompleteLeaves[1:]
		var frontier []*CoNode[C, D, E]
		if g.breadthFirst {
			frontier = concat(rest, children)
		} else {
			frontier = concat(children, rest)
		}
		return &PartialCoGraph[C, D, E]{
			incompleteLeaves: frontier,
			completeLeaves:   g.completeLeaves,
			completeNodes:    appended(g.completeNodes, active),
			breadthFirst:     g.breadthFirst,
		}, nil

	case FoldStep[C, D, E]:
		folded := &CoNode[C, D, E]{
			conf:   active.conf,
			extra:  active.extra,
			in:     active.in,
			base:   s.Target,
			coPath: active.coPath,
		}
		return g.retire(folded), nil

	case RebuildStep[C, D, E]:
		rebuilt := &CoNode[C, D, E]{
			conf:   s.Configuration,
			extra:  s.Extra,
			in:     active.in,
			coPath: active.coPath,
		}
		return &PartialCoGraph[C, D, E]{
			incompleteLeaves: concat([]*CoNode[C, D, E]{rebuilt}, g.incompleteLeaves[1:]),
			completeLeaves:   g.completeLeaves,
			completeNodes:    g.completeNodes,
			breadthFirst:     g.breadthFirst,
		}, nil

	case RollbackStep[C, D, E]:
		ancestorPath := s.Ancestor.Path()
		rebuilt := &CoNode[C, D, E]{
			conf:   s.Configuration,
			extra:  s.Extra,
			in:     s.Ancestor.in,
			coPath: s.Ancestor.coPath,
		}
		frontier := withoutSubtree(g.incompleteLeaves, ancestorPath)
		return &PartialCoGraph[C, D, E]{
			incompleteLeaves: concat([]*CoNode[C, D, E]{rebuilt}, frontier),
			completeLeaves:   withoutSubtree(g.completeLeaves, ancestorPath),
			completeNodes:    withoutSubtree(g.completeNodes, ancestorPath),
			breadthFirst:     g.breadthFirst,
		}, nil

	case PruneStep[C, D, E]:
		return &PartialCoGraph[C, D, E]{
			incompleteLeaves: g.incompleteLeaves,
			completeLeaves:   g.completeLeaves,
			completeNodes:    g.completeNodes,
			unworkable:       true,
			breadthFirst:     g.breadthFirst,
		}, nil

	default:
		return nil, fmt.Errorf("unhandled step kind %T", step)
	}
}

// retire moves the active node (or its replacement at the same
// co-path) into both completed partitions.
func (g *PartialCoGraph[C, D, E]) retire(n *CoNode[C, D, E]) *PartialCoGraph[C, D, E] {
	return &PartialCoGraph[C, D, E]{
		incompleteLeaves: g.incompleteLeaves[1:],
		completeLeaves:   appended(g.completeLeaves, n),
		completeNodes:    appended(g.completeNodes, n),
		breadthFirst:     g.breadthFirst,
	}
}

// appended copies before appending: slices are shared between derived
// graph values and must never be grown in place.
func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func concat[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// withoutSubtree drops every node whose path equals or extends root.
func withoutSubtree[C, D, E any](nodes []*CoNode[C, D, E], root Path) []*CoNode[C, D, E] {
	out := make([]*CoNode[C, D, E], 0, len(nodes))
	for _, n := range nodes {
		if !n.Path().Extends(root) {
			out = append(out, n)
		}
	}
	return out
}
