package machine

import "github.com/mrsc-framework/mrsc/pkg/mrsc"

// AncestorFold returns a FindFold policy that scans the active node's
// ancestor chain, nearest first, and folds to the first ancestor whose
// configuration is equivalent to the active one. Every target it
// returns lies on the ancestor chain, so loopbacks stay resolvable on
// the transposed graph.
func AncestorFold[C, D, E any](equiv func(active, candidate C) bool) func(g *mrsc.PartialCoGraph[C, D, E]) (mrsc.Path, bool) {
	return func(g *mrsc.PartialCoGraph[C, D, E]) (mrsc.Path, bool) {
		active := g.Active()
		for _, ancestor := range active.Ancestors() {
			if equiv(active.Configuration(), ancestor.Configuration()) {
				return ancestor.Path(), true
			}
		}
		return nil, false
	}
}

// CompletedFold returns a FindFold policy that scans all completed
// nodes in insertion order, folding to the first equivalent one. The
// relaxed policy: targets need not be ancestors, and the caller is
// responsible for keeping the resulting loopbacks resolvable (a target
// later discarded by a Rollback leaves a dangling base path).
func CompletedFold[C, D, E any](equiv func(active, candidate C) bool) func(g *mrsc.PartialCoGraph[C, D, E]) (mrsc.Path, bool) {
	return func(g *mrsc.PartialCoGraph[C, D, E]) (mrsc.Path, bool) {
		active := g.Active()
		for _, candidate := range g.CompleteNodes() {
			if equiv(active.Configuration(), candidate.Configuration()) {
				return candidate.Path(), true
			}
		}
		return nil, false
	}
}
