package driver

import "github.com/mrsc-framework/mrsc/pkg/mrsc"

// Collection is what a Collector accumulates over a full search.
type Collection[C, D, E any] struct {
	Graphs    []*mrsc.Graph[C, D, E]
	Discarded int
}

// Collector is a Consumer that keeps every completed graph and counts
// the pruned branches. Accumulation over the result stream replaces
// process-wide counters: callers fold over the collection (count,
// minimum size, and so on) instead of mutating globals during the
// search.
type Collector[C, D, E any] struct {
	collection Collection[C, D, E]
}

func NewCollector[C, D, E any]() *Collector[C, D, E] {
	return &Collector[C, D, E]{}
}

func (c *Collector[C, D, E]) Consume(g *mrsc.Graph[C, D, E]) error {
	c.collection.Graphs = append(c.collection.Graphs, g)
	return nil
}

func (c *Collector[C, D, E]) Discard() {
	c.collection.Discarded++
}

func (c *Collector[C, D, E]) Result() Collection[C, D, E] {
	return c.collection
}
