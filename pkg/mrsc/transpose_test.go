package mrsc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

var _ = Describe("Transpose", func() {
	// A branches into B and C; B folds back to the root, C completes.
	buildLoopGraph := func() *graph {
		g := mrsc.NewPartialCoGraph[string, string, int]("A", 1)
		g = apply(g, expand(
			child{Configuration: "B", Driving: "b", Extra: 2},
			child{Configuration: "C", Driving: "c", Extra: 3},
		))
		g = apply(g, fold(mrsc.Path{}))
		g = apply(g, complete())
		return g
	}

	It("should reject an unfinished graph", func() {
		g := mrsc.NewPartialCoGraph[string, string, int]("A", 1)
		_, err := mrsc.Transpose(g)
		Expect(err).To(MatchError(mrsc.ErrInvalidGraphState))
	})

	It("should reject a pruned graph", func() {
		g := apply(mrsc.NewPartialCoGraph[string, string, int]("A", 1), prune())
		_, err := mrsc.Transpose(g)
		Expect(err).To(MatchError(mrsc.ErrInvalidGraphState))
	})

	It("should rebuild the tree with ordered, labeled edges", func() {
		tree, err := mrsc.Transpose(buildLoopGraph())
		Expect(err).ToNot(HaveOccurred())
		Expect(tree.Root.Configuration).To(Equal("A"))
		Expect(tree.Root.Edges).To(HaveLen(2))
		Expect(tree.Root.Edges[0].Driving).To(Equal("b"))
		Expect(tree.Root.Edges[0].To.Configuration).To(Equal("B"))
		Expect(tree.Root.Edges[1].Driving).To(Equal("c"))
		Expect(tree.Root.Edges[1].To.Configuration).To(Equal("C"))
		Expect(tree.Size()).To(Equal(3))
	})

	It("should carry loopback base paths through", func() {
		tree, err := mrsc.Transpose(buildLoopGraph())
		Expect(err).ToNot(HaveOccurred())
		b := tree.Root.Edges[0].To
		Expect(b.IsLoopback()).To(BeTrue())
		Expect(b.Base).To(Equal(mrsc.Path{}))
		resolved, err := tree.Get(b.Base)
		Expect(err).ToNot(HaveOccurred())
		Expect(resolved).To(BeIdenticalTo(tree.Root))
	})

	It("should round-trip every completed node's configuration", func() {
		g := buildLoopGraph()
		tree, err := mrsc.Transpose(g)
		Expect(err).ToNot(HaveOccurred())
		for _, co := range g.CompleteNodes() {
			n, err := tree.Get(co.Path())
			Expect(err).ToNot(HaveOccurred())
			Expect(n.Configuration).To(Equal(co.Configuration()))
			Expect(n.Extra).To(Equal(co.Extra()))
		}
	})
})

var _ = Describe("Graph.Get", func() {
	var tree *mrsc.Graph[string, string, int]

	BeforeEach(func() {
		g := mrsc.NewPartialCoGraph[string, string, int]("A", 1)
		g = apply(g, expand(child{Configuration: "B", Driving: "b"}))
		g = apply(g, fold(mrsc.Path{}))
		var err error
		tree, err = mrsc.Transpose(g)
		Expect(err).ToNot(HaveOccurred())
	})

	It("should fail on an out-of-range index", func() {
		_, err := tree.Get(mrsc.Path{5})
		Expect(err).To(MatchError(mrsc.ErrUnresolvedPath))
	})

	It("should fail when descending through a loopback leaf", func() {
		_, err := tree.Get(mrsc.Path{0, 0})
		Expect(err).To(MatchError(mrsc.ErrUnresolvedPath))
	})

	It("should resolve the empty path to the root", func() {
		n, err := tree.Get(mrsc.Path{})
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(BeIdenticalTo(tree.Root))
	})
})
