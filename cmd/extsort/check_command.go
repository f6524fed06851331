package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/preflight"
)

func newCheckCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <source> [destination]",
		Short: "Verify that a run could proceed without starting it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			destination := cfg.Paths.Destination
			if len(args) == 2 {
				destination = args[1]
			}

			results := preflight.Run(args[0], destination)
			fmt.Fprintln(cmd.OutOrStdout(), renderCheckTable(results))
			if preflight.Failed(results) {
				return preflightError(results)
			}
			return nil
		},
	}
}
