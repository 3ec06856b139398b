package mrsc_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

type (
	graph = mrsc.PartialCoGraph[string, string, int]
	node  = mrsc.CoNode[string, string, int]
	step  = mrsc.Step[string, string, int]
	child = mrsc.ChildSpec[string, string, int]
)

func complete() step { return mrsc.Complete[string, string, int]() }

func expand(children ...child) step { return mrsc.Expand[string, string, int](children...) }

func fold(target mrsc.Path) step { return mrsc.Fold[string, string, int](target) }
func rebuild(conf string, extra int) step {
	return mrsc.Rebuild[string, string, int](conf, extra)
}

func rollback(ancestor *node, conf string, extra int) step {
	return mrsc.Rollback[string, string, int](ancestor, conf, extra)
}

func prune() step { return mrsc.Prune[string, string, int]() }

func apply(g *graph, s step) *graph {
	GinkgoHelper()
	next, err := g.Apply(s)
	Expect(err).ToNot(HaveOccurred())
	checkPartitions(next)
	return next
}

// checkPartitions asserts the standing invariants: completeLeaves is a
// subset of completeNodes and co-paths are pairwise distinct across
// all three collections.
func checkPartitions(g *graph) {
	GinkgoHelper()
	nodes := map[*node]bool{}
	for _, n := range g.CompleteNodes() {
		nodes[n] = true
	}
	for _, n := range g.CompleteLeaves() {
		Expect(nodes).To(HaveKey(n), "complete leaf %s missing from complete nodes", n.Path())
	}
	seen := map[string]bool{}
	for _, n := range append(append([]*node{}, g.IncompleteLeaves()...), g.CompleteNodes()...) {
		key := n.Path().String()
		Expect(seen).ToNot(HaveKey(key), "duplicate path %s", key)
		seen[key] = true
	}
}

var _ = Describe("PartialCoGraph", func() {
	var g *graph

	BeforeEach(func() {
		g = mrsc.NewPartialCoGraph[string, string, int]("A", 1)
	})

	It("should start as a frontier of one root node", func() {
		Expect(g.IsComplete()).To(BeFalse())
		Expect(g.IsUnworkable()).To(BeFalse())
		Expect(g.CompleteNodes()).To(BeEmpty())
		Expect(g.CompleteLeaves()).To(BeEmpty())
		root := g.Active()
		Expect(root.Configuration()).To(Equal("A"))
		Expect(root.Extra()).To(Equal(1))
		Expect(root.In()).To(BeNil())
		Expect(root.Path()).To(Equal(mrsc.Path{}))
	})

	Describe("Complete", func() {
		It("should retire the active node into both partitions", func() {
			next := apply(g, complete())
			Expect(next.IsComplete()).To(BeTrue())
			Expect(next.Active()).To(BeNil())
			Expect(next.CompleteNodes()).To(HaveLen(1))
			Expect(next.CompleteLeaves()).To(HaveLen(1))
			Expect(next.CompleteLeaves()[0].Configuration()).To(Equal("A"))
		})

		It("should fail without an active node", func() {
			done := apply(g, complete())
			_, err := done.Apply(complete())
			Expect(err).To(MatchError(mrsc.ErrInvalidGraphState))
		})
	})

	Describe("Expand", func() {
		It("should create children in order with front insertion", func() {
			next := apply(g, expand(
				child{Configuration: "A0", Driving: "left", Extra: 2},
				child{Configuration: "A1", Driving: "right", Extra: 3},
			))
			Expect(next.IncompleteLeaves()).To(HaveLen(2))
			first, second := next.IncompleteLeaves()[0], next.IncompleteLeaves()[1]
			Expect(first.Configuration()).To(Equal("A0"))
			Expect(first.Path()).To(Equal(mrsc.Path{0}))
			Expect(first.Extra()).To(Equal(2))
			Expect(first.In().Driving()).To(Equal("left"))
			Expect(first.In().Parent().Configuration()).To(Equal("A"))
			Expect(second.Path()).To(Equal(mrsc.Path{1}))
			Expect(second.In().Driving()).To(Equal("right"))
		})

		It("should move the expanded node to complete nodes but not leaves", func() {
			next := apply(g, expand(child{Configuration: "A0"}))
			Expect(next.CompleteNodes()).To(HaveLen(1))
			Expect(next.CompleteNodes()[0].Configuration()).To(Equal("A"))
			Expect(next.CompleteLeaves()).To(BeEmpty())
		})

		It("should keep depth-first order across nested expansions", func() {
			next := apply(g, expand(child{Configuration: "A0"}, child{Configuration: "A1"}))
			next = apply(next, expand(child{Configuration: "A00"}, child{Configuration: "A01"}))
			var confs []string
			for _, n := range next.IncompleteLeaves() {
				confs = append(confs, n.Configuration())
			}
			Expect(confs).To(Equal([]string{"A00", "A01", "A1"}))
		})

		It("should append children with back insertion under BreadthFirst", func() {
			bf := mrsc.NewPartialCoGraph[string, string, int]("A", 1, mrsc.BreadthFirst())
			next := apply(bf, expand(child{Configuration: "A0"}, child{Configuration: "A1"}))
			next = apply(next, expand(child{Configuration: "A00"}))
			var confs []string
			for _, n := range next.IncompleteLeaves() {
				confs = append(confs, n.Configuration())
			}
			Expect(confs).To(Equal([]string{"A1", "A00"}))
		})

		It("should not disturb the graph it was applied to", func() {
			_ = apply(g, expand(child{Configuration: "A0"}))
			sibling := apply(g, expand(child{Configuration: "A0'"}))
			Expect(g.IncompleteLeaves()).To(HaveLen(1))
			Expect(g.Active().Configuration()).To(Equal("A"))
			Expect(sibling.Active().Configuration()).To(Equal("A0'"))
		})
	})

	Describe("Fold", func() {
		It("should retire the active node as a loopback leaf", func() {
			next := apply(g, expand(child{Configuration: "A0"}))
			next = apply(next, fold(mrsc.Path{}))
			Expect(next.IsComplete()).To(BeTrue())
			Expect(next.CompleteLeaves()).To(HaveLen(1))
			folded := next.CompleteLeaves()[0]
			base, ok := folded.Base()
			Expect(ok).To(BeTrue())
			Expect(base).To(Equal(mrsc.Path{}))
			Expect(folded.Path()).To(Equal(mrsc.Path{0}))
			Expect(folded.Configuration()).To(Equal("A0"))
		})
	})

	Describe("Rebuild", func() {
		It("should replace the active node in place and keep it on the frontier", func() {
			next := apply(g, expand(child{Configuration: "A0", Driving: "left"}, child{Configuration: "A1"}))
			next = apply(next, rebuild("G", 9))
			Expect(next.IncompleteLeaves()).To(HaveLen(2))
			rebuilt := next.Active()
			Expect(rebuilt.Configuration()).To(Equal("G"))
			Expect(rebuilt.Extra()).To(Equal(9))
			Expect(rebuilt.Path()).To(Equal(mrsc.Path{0}))
			Expect(rebuilt.In().Driving()).To(Equal("left"))
		})
	})

	Describe("Rollback", func() {
		It("should discard the ancestor's subtree and regeneralize it", func() {
			next := apply(g, expand(child{Configuration: "A0"}, child{Configuration: "A1"}))
			ancestor := next.Active() // A0 at path 0
			next = apply(next, expand(child{Configuration: "A00"}, child{Configuration: "A01"}))
			next = apply(next, complete()) // A00
			next = apply(next, rollback(ancestor, "G", 7))

			rebuilt := next.Active()
			Expect(rebuilt.Configuration()).To(Equal("G"))
			Expect(rebuilt.Path()).To(Equal(mrsc.Path{0}))
			for _, n := range append(append([]*node{}, next.IncompleteLeaves()...), next.CompleteNodes()...) {
				if n == rebuilt {
					continue
				}
				Expect(n.Path().Extends(mrsc.Path{0})).To(BeFalse(),
					"node %s survived the rollback of 0", n.Path())
			}
			Expect(next.IncompleteLeaves()).To(HaveLen(2)) // G and A1
		})

		It("should degenerate to a rebuild on a childless target", func() {
			next := apply(g, expand(child{Configuration: "A0"}))
			target := next.Active()
			next = apply(next, rollback(target, "G", 0))
			Expect(next.Active().Configuration()).To(Equal("G"))
			Expect(next.Active().Path()).To(Equal(mrsc.Path{0}))
			Expect(next.IncompleteLeaves()).To(HaveLen(1))
			Expect(next.CompleteNodes()).To(HaveLen(1)) // the root
		})
	})

	Describe("Prune", func() {
		It("should set the sticky unworkable flag", func() {
			next := apply(g, prune())
			Expect(next.IsUnworkable()).To(BeTrue())
			_, err := next.Apply(complete())
			Expect(err).To(MatchError(mrsc.ErrInvalidGraphState))
		})
	})

	Describe("error reporting", func() {
		It("should name the offending step", func() {
			done := apply(g, complete())
			_, err := done.Apply(expand(child{Configuration: "A0"}))
			Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf("expand(%d)", 1))))
		})
	})
})
