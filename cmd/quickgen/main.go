// Command quickgen samples random test values from the registered
// generator family: list the available generators, sample values for a
// seed, or check a generator across many seeds.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger discards output unless --verbose installs a console writer.
var logger = zerolog.Nop()

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "quickgen",
		Short:         "Sample random test values from registered generators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					With().Timestamp().Logger()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation details to stderr")

	root.AddCommand(newListCmd(), newSampleCmd(), newCheckCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
