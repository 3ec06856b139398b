package mrsc

import (
	"errors"
	"fmt"
)

// ErrUnresolvedPath is returned by Graph.Get when a path does not name
// a node, either because an index is out of range or because the path
// descends through a loopback leaf. A loopback whose base path yields
// this error was folded against a node that never made it into the
// completed partition — a violated Fold contract surfacing here.
var ErrUnresolvedPath = errors.New("path does not resolve to a node")

// Edge is an outgoing edge in child-pointer form, labeled with the
// driving info recorded when the child was expanded.
type Edge[C, D, E any] struct {
	Driving D
	To      *Node[C, D, E]
}

// Node is a node in child-pointer form. A node with a non-nil Base is
// a loopback leaf: it has no edges and Base names the earlier node it
// folds back to. Nodes are not modified after construction.
type Node[C, D, E any] struct {
	Configuration C
	Extra         E
	Path          Path
	Base          Path
	Edges         []Edge[C, D, E]
}

// IsLoopback reports whether the node folds back to an earlier one.
func (n *Node[C, D, E]) IsLoopback() bool {
	return n.Base != nil
}

// Graph is a completed SC graph in child-pointer form, the shape every
// downstream consumer (residuation, size computation, printing, safety
// checking) works on.
type Graph[C, D, E any] struct {
	Root *Node[C, D, E]
}

// Get follows child indices from the root. Consumers resolve a
// loopback leaf by calling Get with its Base path.
func (g *Graph[C, D, E]) Get(path Path) (*Node[C, D, E], error) {
	n := g.Root
	for depth, i := range path {
		if n.IsLoopback() {
			return nil, fmt.Errorf("%w: %s descends through loopback at %s", ErrUnresolvedPath, path, path[:depth])
		}
		if i < 0 || i >= len(n.Edges) {
			return nil, fmt.Errorf("%w: no child %d at %s", ErrUnresolvedPath, i, path[:depth])
		}
		n = n.Edges[i].To
	}
	return n, nil
}

// Size returns the number of nodes in the graph.
func (g *Graph[C, D, E]) Size() int {
	return size(g.Root)
}

func size[C, D, E any](n *Node[C, D, E]) int {
	total := 1
	for _, e := range n.Edges {
		total += size(e.To)
	}
	return total
}

// Leaves returns the leaf nodes in depth-first left-to-right order.
func (g *Graph[C, D, E]) Leaves() []*Node[C, D, E] {
	var out []*Node[C, D, E]
	stack := []*Node[C, D, E]{g.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(n.Edges) == 0 {
			out = append(out, n)
			continue
		}
		for i := len(n.Edges) - 1; i >= 0; i-- {
			stack = append(stack, n.Edges[i].To)
		}
	}
	return out
}
