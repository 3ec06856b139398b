package mrsc

import (
	"fmt"
	"sort"
)

// Transpose converts a completed parent-pointer graph into its
// child-pointer dual. Nodes are ordered by path; for every node the
// children are exactly the nodes at path ++ [i] for i = 0, 1, ...,
// attached in increasing i with the driving label recorded at
// expansion time. Base paths of loopback leaves are carried through
// unchanged; resolving them on the result is the consumer's business.
func Transpose[C, D, E any](g *PartialCoGraph[C, D, E]) (*Graph[C, D, E], error) {
	if g.IsUnworkable() || !g.IsComplete() {
		return nil, fmt.Errorf("%w: transpose requires a completed graph", ErrInvalidGraphState)
	}

	sorted := make([]*CoNode[C, D, E], len(g.completeNodes))
	copy(sorted, g.completeNodes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path().Compare(sorted[j].Path()) < 0
	})

	// Path order puts every parent before its children, so a single
	// pass can attach each node to an already-built parent.
	built := make(map[string]*Node[C, D, E], len(sorted))
	var root *Node[C, D, E]
	for _, co := range sorted {
		path := co.Path()
		n := &Node[C, D, E]{
			Configuration: co.conf,
			Extra:         co.extra,
			Path:          path,
			Base:          co.base,
		}
		built[path.String()] = n
		if len(path) == 0 {
			root = n
			continue
		}
		parent, ok := built[Path(path[:len(path)-1]).String()]
		if !ok {
			return nil, fmt.Errorf("%w: node %s has no completed parent", ErrInvalidGraphState, path)
		}
		parent.Edges = append(parent.Edges, Edge[C, D, E]{
			Driving: co.in.driving,
			To:      n,
		})
	}
	if root == nil {
		return nil, fmt.Errorf("%w: completed graph has no root node", ErrInvalidGraphState)
	}
	return &Graph[C, D, E]{Root: root}, nil
}
