package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	quickcheck "github.com/qz267/junit-quickcheck"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered generators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			name := color.New(color.FgCyan)
			for _, n := range quickcheck.DefaultRegistry().Names() {
				name.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
