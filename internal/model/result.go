package model

import (
	"time"
)

const (
	// StatusPending indicates a target has not been processed yet.
	StatusPending = "pending"
	// StatusRunning indicates a target is actively being processed.
	StatusRunning = "running"
	// StatusApplied marks a mutation that was applied successfully.
	StatusApplied = "applied"
	// StatusSkipped indicates the mutation was deliberately not applied
	// (approval rejected, state already satisfied, or object not found).
	StatusSkipped = "skipped"
	// StatusFailed marks a failure at any step of the workflow.
	StatusFailed = "failed"
	// StatusWouldApply indicates dry-run would apply the mutation.
	StatusWouldApply = "would_apply"
)

// State is a snapshot of the observable property being managed. It is read
// fresh before and after mutation and never cached across invocations.
type State struct {
	// Exists reports whether the managed object was present at all. Flag
	// properties always exist; removable objects may not.
	Exists bool

	// Value is the rendered property value, e.g. "enabled" or "disabled"
	// for a flag, or the object identity for removable objects. Empty when
	// the state could not be read.
	Value string
}

// Known reports whether the snapshot carries an observed value.
func (s State) Known() bool {
	return s.Exists || s.Value != ""
}

// Result captures the outcome of one guarded mutation against one target.
// A Result is produced for every target, including those that failed to
// connect; partial failure is reported, never hidden.
type Result struct {
	Host           string
	Instance       string
	FullName       string
	Mutation       string
	Prior          State
	New            State
	Applied        bool
	CascadeApplied bool
	Status         string
	Message        string
	Errors         []error
	Duration       time.Duration
	Timestamp      time.Time
}

// Failed reports whether any step of the workflow recorded an error.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// FirstError returns the earliest recorded error, or nil.
func (r *Result) FirstError() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}
