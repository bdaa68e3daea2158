// Package agentjob implements the object-removal mutation that deletes a
// named SQL Agent job, optionally purging its history first and optionally
// preserving schedules no other job references.
package agentjob

import (
	"context"
	"fmt"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/target"
)

const (
	// ValuePresent is the rendered state of a job that exists.
	ValuePresent = "present"
	// ValueAbsent is the rendered state of a job that does not exist.
	ValueAbsent = "absent"
)

// Session is the capability a connection session must provide for SQL Agent
// job management.
type Session interface {
	JobExists(ctx context.Context, name string) (bool, error)
	PurgeJobHistory(ctx context.Context, name string) error
	DeleteJob(ctx context.Context, name string, keepUnusedSchedule bool) error
}

// Options controls removal behavior.
type Options struct {
	// KeepHistory leaves the job's execution history in msdb instead of
	// purging it before the delete. Default is to purge.
	KeepHistory bool

	// KeepUnusedSchedule preserves schedules that no remaining job
	// references. Default is to remove them along with the job.
	KeepUnusedSchedule bool
}

type removeMutation struct {
	jobName string
	opts    Options
}

// NewRemove creates the remove-job mutation for the named job.
func NewRemove(jobName string, opts Options) mutator.Mutation {
	return &removeMutation{jobName: jobName, opts: opts}
}

var _ mutator.Mutation = (*removeMutation)(nil)

func (m *removeMutation) Name() string { return "remove-job" }

func (m *removeMutation) Describe(tgt target.Target, _ model.State) string {
	return fmt.Sprintf("remove SQL Agent job %q from %s", m.jobName, tgt.FullName())
}

func (m *removeMutation) Read(ctx context.Context, sess mutator.Session) (model.State, error) {
	js, ok := sess.(Session)
	if !ok {
		return model.State{}, fmt.Errorf("session does not support SQL Agent job management")
	}

	exists, err := js.JobExists(ctx, m.jobName)
	if err != nil {
		return model.State{}, err
	}

	if !exists {
		return model.State{Value: ValueAbsent}, nil
	}
	return model.State{Exists: true, Value: ValuePresent}, nil
}

// Skip makes a missing job a reported no-op rather than an error: there is
// nothing to purge or delete.
func (m *removeMutation) Skip(prior model.State) (bool, string) {
	if !prior.Exists {
		return true, fmt.Sprintf("job %q not found", m.jobName)
	}
	return false, ""
}

func (m *removeMutation) Satisfied(prior model.State) bool {
	return !prior.Exists
}

func (m *removeMutation) Apply(ctx context.Context, sess mutator.Session, _ model.State) error {
	js, ok := sess.(Session)
	if !ok {
		return fmt.Errorf("session does not support SQL Agent job management")
	}

	if !m.opts.KeepHistory {
		if err := js.PurgeJobHistory(ctx, m.jobName); err != nil {
			return fmt.Errorf("purge job history: %w", err)
		}
	}

	if err := js.DeleteJob(ctx, m.jobName, m.opts.KeepUnusedSchedule); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func (m *removeMutation) RequiresRestart() bool { return false }
