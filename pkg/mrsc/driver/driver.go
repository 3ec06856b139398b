// Package driver exposes the two ways of consuming a search: a lazy
// pull-style producer handing out one graph at a time, and a
// push-style builder that runs the worklist to exhaustion and reports
// into a consumer. Both enumerate the same multiset of completed
// graphs and the same count of pruned branches for a fixed machine and
// start state; they differ only in control style.
package driver

import (
	"github.com/mrsc-framework/mrsc/internal/engine"
	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

type Option[C, D, E any] func(c *config[C, D, E]) error

type config[C, D, E any] struct {
	tracer mrsc.Tracer[C, D, E]
}

// WithTracer attaches a tracer notified on every normalization step.
func WithTracer[C, D, E any](t mrsc.Tracer[C, D, E]) Option[C, D, E] {
	return func(c *config[C, D, E]) error {
		c.tracer = t
		return nil
	}
}

func (c *config[C, D, E]) engineOptions() []engine.Option[C, D, E] {
	var opts []engine.Option[C, D, E]
	if c.tracer != nil {
		opts = append(opts, engine.WithTracer(c.tracer))
	}
	return opts
}

// Producer is the external iterator over search results. The search
// space can be exponential or infinite; a caller bounds it by simply
// not asking for more.
type Producer[C, D, E any] struct {
	worklist *engine.Worklist[C, D, E]
}

func NewProducer[C, D, E any](start *mrsc.PartialCoGraph[C, D, E], m mrsc.Machine[C, D, E], options ...Option[C, D, E]) (*Producer[C, D, E], error) {
	cfg := &config[C, D, E]{}
	for _, option := range options {
		if err := option(cfg); err != nil {
			return nil, err
		}
	}
	worklist, err := engine.New(start, m, cfg.engineOptions()...)
	if err != nil {
		return nil, err
	}
	return &Producer[C, D, E]{worklist: worklist}, nil
}

// HasNext reports whether another result remains, expanding the
// search as far as needed to decide.
func (p *Producer[C, D, E]) HasNext() (bool, error) {
	return p.worklist.HasNext()
}

// Next returns the next completed or unworkable graph; the caller
// checks IsUnworkable to decide whether to use or discard it. Next
// past exhaustion returns mrsc.ErrExhausted.
func (p *Producer[C, D, E]) Next() (*mrsc.PartialCoGraph[C, D, E], error) {
	return p.worklist.Next()
}

// Stalls counts branches abandoned because the machine returned no
// successors for a live graph.
func (p *Producer[C, D, E]) Stalls() int {
	return p.worklist.Stalls()
}

// Build drives the search to exhaustion, transposing every completed
// graph into child-pointer form and reporting it to the consumer;
// pruned branches are reported as discards. It returns the consumer's
// aggregate.
func Build[C, D, E, R any](start *mrsc.PartialCoGraph[C, D, E], m mrsc.Machine[C, D, E], consumer mrsc.Consumer[C, D, E, R], options ...Option[C, D, E]) (R, error) {
	var zero R
	producer, err := NewProducer(start, m, options...)
	if err != nil {
		return zero, err
	}
	for {
		ok, err := producer.HasNext()
		if err != nil {
			return zero, err
		}
		if !ok {
			return consumer.Result(), nil
		}
		g, err := producer.Next()
		if err != nil {
			return zero, err
		}
		if g.IsUnworkable() {
			consumer.Discard()
			continue
		}
		transposed, err := mrsc.Transpose(g)
		if err != nil {
			return zero, err
		}
		if err := consumer.Consume(transposed); err != nil {
			return zero, err
		}
	}
}
