package looper

import (
	"github.com/mrsc-framework/mrsc/pkg/mrsc"
	"github.com/mrsc-framework/mrsc/pkg/mrsc/machine"
)

// NewMachine returns a driving policy that keeps re-emitting the "X0"
// configuration under itself. Without folding it would unfold forever;
// the ancestor fold turns the repetition into a loopback leaf instead.
func NewMachine() mrsc.Machine[string, string, struct{}] {
	skeleton := machine.GenericMultiMachine[string, string, struct{}, struct{}]{
		FindFold: machine.AncestorFold[string, string, struct{}](func(active, candidate string) bool {
			return active == candidate
		}),
		Drive: func(_ machine.Whistle[struct{}], g *mrsc.PartialCoGraph[string, string, struct{}]) []mrsc.Step[string, string, struct{}] {
			switch g.Active().Configuration() {
			case "X":
				return []mrsc.Step[string, string, struct{}]{mrsc.Expand[string, string, struct{}](
					mrsc.ChildSpec[string, string, struct{}]{Configuration: "X0", Driving: "left"},
					mrsc.ChildSpec[string, string, struct{}]{Configuration: "X1", Driving: "right"},
				)}
			case "X0":
				return []mrsc.Step[string, string, struct{}]{mrsc.Expand[string, string, struct{}](
					mrsc.ChildSpec[string, string, struct{}]{Configuration: "X0", Driving: "repeat"},
				)}
			default:
				return []mrsc.Step[string, string, struct{}]{mrsc.Complete[string, string, struct{}]()}
			}
		},
	}
	return skeleton.Machine()
}
