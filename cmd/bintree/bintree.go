package bintree

import (
	"github.com/mrsc-framework/mrsc/pkg/mrsc"
	"github.com/mrsc-framework/mrsc/pkg/mrsc/machine"
)

// NewMachine returns the string-growth driving policy: a configuration
// shorter than limit is expanded into both single-digit extensions in
// one step, anything else is completed. Deterministic, so the search
// yields a single perfect binary tree.
func NewMachine(limit int) mrsc.Machine[string, string, struct{}] {
	return machine.FromSteps[string, string, struct{}](machine.StepperFunc[string, string, struct{}](
		func(g *mrsc.PartialCoGraph[string, string, struct{}]) ([]mrsc.Step[string, string, struct{}], error) {
			conf := g.Active().Configuration()
			if len(conf) >= limit {
				return []mrsc.Step[string, string, struct{}]{mrsc.Complete[string, string, struct{}]()}, nil
			}
			return []mrsc.Step[string, string, struct{}]{mrsc.Expand[string, string, struct{}](
				mrsc.ChildSpec[string, string, struct{}]{Configuration: conf + "0", Driving: "append 0"},
				mrsc.ChildSpec[string, string, struct{}]{Configuration: conf + "1", Driving: "append 1"},
			)}, nil
		}))
}

// NewMultiMachine returns the OR-branching variant: below the limit
// each single-digit extension is offered as a separate alternative, so
// the search enumerates every root-to-leaf chain as its own completed
// graph.
func NewMultiMachine(limit int) mrsc.Machine[string, string, struct{}] {
	return machine.FromSteps[string, string, struct{}](machine.StepperFunc[string, string, struct{}](
		func(g *mrsc.PartialCoGraph[string, string, struct{}]) ([]mrsc.Step[string, string, struct{}], error) {
			conf := g.Active().Configuration()
			if len(conf) >= limit {
				return []mrsc.Step[string, string, struct{}]{mrsc.Complete[string, string, struct{}]()}, nil
			}
			return []mrsc.Step[string, string, struct{}]{
				mrsc.Expand[string, string, struct{}](
					mrsc.ChildSpec[string, string, struct{}]{Configuration: conf + "0", Driving: "append 0"},
				),
				mrsc.Expand[string, string, struct{}](
					mrsc.ChildSpec[string, string, struct{}]{Configuration: conf + "1", Driving: "append 1"},
				),
			}, nil
		}))
}
