package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dbatools",
		Short:         "dbatools applies guarded administrative mutations to SQL Server instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Report intended changes without applying them")

	cmd.AddCommand(newDisableHadrCmd(flags))
	cmd.AddCommand(newRemoveJobCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
