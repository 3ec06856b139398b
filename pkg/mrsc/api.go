package mrsc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrExhausted is returned by a pull driver when the next graph is
// requested after the search space has been fully enumerated.
var ErrExhausted = errors.New("search exhausted: no further graphs")

// ErrInvalidGraphState is returned when a step is applied to a graph
// with no active node, or when a completed-only operation is invoked
// on an unfinished graph. It signals a broken Machine implementation
// rather than a recoverable runtime condition.
var ErrInvalidGraphState = errors.New("invalid graph state")

// Path identifies a node by the sequence of zero-based child indices
// leading to it from the root. The empty path is the root itself.
type Path []int

// Compare orders paths: shorter paths first, equal-length paths
// element-wise on the first differing index. The resulting order is a
// strict total order consistent with a depth-first left-to-right
// enumeration of the tree.
func (p Path) Compare(o Path) int {
	if len(p) != len(o) {
		if len(p) < len(o) {
			return -1
		}
		return 1
	}
	for i := range p {
		if p[i] != o[i] {
			if p[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Extends reports whether p is prefix itself or a descendant of it.
func (p Path) Extends(prefix Path) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Child returns the path of the i-th child.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

func (p Path) String() string {
	if len(p) == 0 {
		return "ε"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// CoPath is a Path in reverse. Expansion prepends the new child index,
// so a node's path from the root is recovered by a single reversal
// instead of a walk of the tree.
type CoPath []int

// Child returns the co-path of the i-th child, i.e. i prepended.
func (p CoPath) Child(i int) CoPath {
	child := make(CoPath, len(p)+1)
	child[0] = i
	copy(child[1:], p)
	return child
}

// Path returns the root-to-node form.
func (p CoPath) Path() Path {
	path := make(Path, len(p))
	for i, idx := range p {
		path[len(p)-1-i] = idx
	}
	return path
}

// Machine is the non-deterministic stepping policy driving a search.
// Steps maps a partial graph that is neither complete nor unworkable
// to the ordered list of its successor states; more than one result
// encodes OR-branching and every alternative is explored. A
// well-formed machine never returns an empty list for such a graph:
// branches to be abandoned must be pruned explicitly.
type Machine[C, D, E any] interface {
	Steps(g *PartialCoGraph[C, D, E]) ([]*PartialCoGraph[C, D, E], error)
}

// Consumer accumulates the outcome of a push-style search. Consume is
// called once per completed graph, Discard once per pruned branch, and
// Result once after exhaustion to retrieve the aggregate.
type Consumer[C, D, E, R any] interface {
	Consume(g *Graph[C, D, E]) error
	Discard()
	Result() R
}

// SearchPosition is a live point in the search reported to a Tracer:
// the worklist head about to be stepped.
type SearchPosition[C, D, E any] interface {
	// Graph is the partial graph at the head of the worklist.
	Graph() *PartialCoGraph[C, D, E]
	// Pending is the number of alternatives still awaiting expansion,
	// the head included.
	Pending() int
}

// Tracer is notified once per driving step of a driver.
type Tracer[C, D, E any] interface {
	Trace(p SearchPosition[C, D, E])
}

type DefaultTracer[C, D, E any] struct{}

func (DefaultTracer[C, D, E]) Trace(_ SearchPosition[C, D, E]) {
}

type LoggingTracer[C, D, E any] struct {
	Writer io.Writer
}

func (t LoggingTracer[C, D, E]) Trace(p SearchPosition[C, D, E]) {
	g := p.Graph()
	fmt.Fprintf(t.Writer, "driving %s, %d incomplete, %d pending\n",
		g.Active().Path(), len(g.IncompleteLeaves()), p.Pending())
}
