package looper

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"github.com/mrsc-framework/mrsc/internal/cli"
	"github.com/mrsc-framework/mrsc/pkg/mrsc"
	"github.com/mrsc-framework/mrsc/pkg/mrsc/driver"
)

func NewLooperCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "looper",
		Short: "Builds an SC graph whose repetition terminates through folding",
		Long: `Drives a policy that keeps regenerating the same configuration under
itself. Folding against the ancestor chain catches the repetition and
closes it into a loopback leaf, so the search terminates with a finite
graph containing a cycle reference.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every driving step")
	return cmd
}

func run(verbose bool) error {
	log := cli.NewLogger(verbose)

	start := mrsc.NewPartialCoGraph[string, string, struct{}]("X", struct{}{})
	collection, err := driver.Build(start, NewMachine(), driver.NewCollector[string, string, struct{}](),
		driver.WithTracer[string, string, struct{}](cli.ZerologTracer[string, string, struct{}]{Log: log}))
	if err != nil {
		return err
	}

	for _, g := range collection.Graphs {
		fmt.Println(render(g))
	}
	log.Info().
		Int("produced", len(collection.Graphs)).
		Int("discarded", collection.Discarded).
		Msg("search finished")
	return nil
}

func render(g *mrsc.Graph[string, string, struct{}]) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	var walk func(n *mrsc.Node[string, string, struct{}])
	walk = func(n *mrsc.Node[string, string, struct{}]) {
		label := n.Configuration
		if n.IsLoopback() {
			label = fmt.Sprintf("%s -> fold to %s", n.Configuration, n.Base)
		}
		l.AppendItem(label)
		l.Indent()
		for _, e := range n.Edges {
			walk(e.To)
		}
		l.UnIndent()
	}
	walk(g.Root)
	return l.Render()
}
