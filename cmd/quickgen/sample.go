package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	quickcheck "github.com/qz267/junit-quickcheck"
)

func newSampleCmd() *cobra.Command {
	var (
		seed     int64
		count    int
		size     int
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "sample <generator>",
		Short: "Generate values from a named generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			logger.Debug().
				Str("generator", name).
				Int64("seed", seed).
				Int("count", count).
				Msg("sampling")

			values, err := quickcheck.SampleN(name, seed, count,
				quickcheck.WithSize(size),
				quickcheck.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}

			index := color.New(color.FgHiBlack)
			for i, v := range values {
				index.Fprintf(cmd.OutOrStdout(), "%4d  ", i)
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the randomness source")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of values to generate")
	cmd.Flags().IntVar(&size, "size", 100, "size metric for generated values")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "recursion budget for composite values")
	return cmd
}
