package main

import (
	"github.com/spf13/cobra"

	"github.com/Prasad4455/dbatools/internal/mutation/agentjob"
)

var removeJobRunner = runMutationBatch

func newRemoveJobCmd(root *rootFlags) *cobra.Command {
	opts := batchOptions{}
	var jobName string
	var keepHistory bool
	var keepUnusedSchedule bool

	cmd := &cobra.Command{
		Use:   `remove-job [host[\instance]...]`,
		Short: "Remove a SQL Agent job from SQL Server instances",
		Long: `Remove the named SQL Agent job from one or more SQL Server instances. The
job's execution history is purged first unless --keep-history is set;
schedules no other job references are removed with the job unless
--keep-unused-schedule is set. A job that does not exist on a target is
reported as skipped, not as an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.targetSpecs = args
			opts.dryRun = root.dryRun
			opts.verbose = root.verbose

			if err := validateBatchOptions(&opts); err != nil {
				return err
			}

			return removeJobRunner(runParams{
				opts: opts,
				mutation: agentjob.NewRemove(jobName, agentjob.Options{
					KeepHistory:        keepHistory,
					KeepUnusedSchedule: keepUnusedSchedule,
				}),
				title: "remove-job",
			})
		},
	}

	cmd.Flags().StringVarP(&opts.targetsFile, "targets-file", "f", "", "Path to a YAML targets document")
	cmd.Flags().StringVar(&opts.user, "user", "", "SQL login name (default: integrated authentication)")
	cmd.Flags().StringVar(&opts.passwordEnv, "password-env", "", "Environment variable holding the SQL login password")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "Prompt before applying each change")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "Process up to N targets concurrently")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Per-target timeout in seconds")
	cmd.Flags().StringVarP(&jobName, "job", "j", "", "Name of the SQL Agent job to remove")
	cmd.Flags().BoolVar(&keepHistory, "keep-history", false, "Leave the job's execution history in msdb")
	cmd.Flags().BoolVar(&keepUnusedSchedule, "keep-unused-schedule", false, "Preserve schedules no remaining job references")
	cmd.MarkFlagRequired("job") //nolint:errcheck

	return cmd
}
