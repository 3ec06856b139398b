package bintree

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mrsc-framework/mrsc/internal/cli"
	"github.com/mrsc-framework/mrsc/pkg/mrsc"
	"github.com/mrsc-framework/mrsc/pkg/mrsc/driver"
)

func NewBintreeCommand() *cobra.Command {
	var (
		limit        int
		count        int
		multi        bool
		breadthFirst bool
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "bintree",
		Short: "Enumerates the binary unfoldings of a string configuration",
		Long: `Enumerates the SC graphs of a toy driving policy over strings: a
configuration shorter than the limit is expanded by appending "0" and
"1", anything longer is completed. With --multi each extension becomes
a separate search alternative, turning one perfect tree into a family
of chains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(limit, count, multi, breadthFirst, verbose)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 3, "configuration length at which driving stops")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many completed graphs (0 means all)")
	cmd.Flags().BoolVar(&multi, "multi", false, "offer each extension as a separate alternative")
	cmd.Flags().BoolVar(&breadthFirst, "breadth-first", false, "insert expanded children at the back of the frontier")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every driving step")
	return cmd
}

func run(limit, count int, multi, breadthFirst, verbose bool) error {
	log := cli.NewLogger(verbose)

	var options []mrsc.GraphOption
	if breadthFirst {
		options = append(options, mrsc.BreadthFirst())
	}
	start := mrsc.NewPartialCoGraph[string, string, struct{}]("A", struct{}{}, options...)

	m := NewMachine(limit)
	if multi {
		m = NewMultiMachine(limit)
	}

	producer, err := driver.NewProducer(start, m,
		driver.WithTracer[string, string, struct{}](cli.ZerologTracer[string, string, struct{}]{Log: log}))
	if err != nil {
		return err
	}

	began := time.Now()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Nodes", "Leaves", "Leaf configurations"})

	produced, discarded := 0, 0
	for count == 0 || produced < count {
		ok, err := producer.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		g, err := producer.Next()
		if err != nil {
			return err
		}
		if g.IsUnworkable() {
			discarded++
			continue
		}
		transposed, err := mrsc.Transpose(g)
		if err != nil {
			return err
		}
		produced++
		leaves := transposed.Leaves()
		confs := make([]string, len(leaves))
		for i, leaf := range leaves {
			confs[i] = leaf.Configuration
		}
		t.AppendRow(table.Row{produced, transposed.Size(), len(leaves), strings.Join(confs, " ")})
	}

	fmt.Println(t.Render())
	log.Info().
		Int("produced", produced).
		Int("discarded", discarded).
		Dur("elapsed", time.Since(began)).
		Msg("search finished")
	return nil
}
