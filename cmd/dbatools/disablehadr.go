package main

import (
	"github.com/spf13/cobra"

	"github.com/Prasad4455/dbatools/internal/mutation/hadr"
)

var disableHadrRunner = runMutationBatch

func newDisableHadrCmd(root *rootFlags) *cobra.Command {
	opts := batchOptions{}
	var force bool
	var skipIfDisabled bool

	cmd := &cobra.Command{
		Use:   `disable-hadr [host[\instance]...]`,
		Short: "Disable the HADR feature flag on SQL Server instances",
		Long: `Disable the high-availability (HADR) feature flag on one or more SQL Server
instances. The flag only takes effect after the instance services restart;
pass --force to stop and restart the SQL Agent and engine services as part of
the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.targetSpecs = args
			opts.dryRun = root.dryRun
			opts.verbose = root.verbose

			if err := validateBatchOptions(&opts); err != nil {
				return err
			}

			return disableHadrRunner(runParams{
				opts:     opts,
				mutation: hadr.NewDisable(),
				force:    force,
				skipIf:   skipIfDisabled,
				title:    "disable-hadr",
			})
		},
	}

	cmd.Flags().StringVarP(&opts.targetsFile, "targets-file", "f", "", "Path to a YAML targets document")
	cmd.Flags().StringVar(&opts.user, "user", "", "SQL login name (default: integrated authentication)")
	cmd.Flags().StringVar(&opts.passwordEnv, "password-env", "", "Environment variable holding the SQL login password")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "Prompt before applying each change")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "Process up to N targets concurrently")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Per-target timeout in seconds")
	cmd.Flags().BoolVar(&force, "force", false, "Restart the SQL Agent and engine services after disabling")
	cmd.Flags().BoolVar(&skipIfDisabled, "skip-if-disabled", false, "Skip instances where HADR is already disabled")

	return cmd
}
