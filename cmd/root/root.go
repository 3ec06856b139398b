package root

import (
	"github.com/spf13/cobra"

	"github.com/mrsc-framework/mrsc/cmd/bintree"

	"github.com/mrsc-framework/mrsc/cmd/looper"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mrsc",
		Short: "mrsc is an open-source multi-result supercompilation framework",
		Long: `An open-source multi-result supercompilation framework written in Go.
For more information visit https://github.com/mrsc-framework/mrsc`,
	}

	// add sub-commands
	rootCmd.AddCommand(bintree.NewBintreeCommand())
	rootCmd.AddCommand(looper.NewLooperCommand())

	return rootCmd
}
