// Package mutator implements the guarded state mutation workflow: connect,
// read current state, pass the approval gate, apply the change, optionally
// cascade a dependent-service restart, re-verify, and report. Each step can
// fail independently; a failure is recorded on the per-target result and
// never aborts sibling targets in a batch.
package mutator

import (
	"context"
	"fmt"
	"time"

	"github.com/Prasad4455/dbatools/internal/logger"
	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/target"
	dbaerrors "github.com/Prasad4455/dbatools/pkg/errors"
)

// Runner executes guarded mutations against targets. All collaborator
// fields except Logger must be set.
type Runner struct {
	Connector Connector
	Services  ServiceController
	Gate      ApprovalGate
	Logger    *logger.Logger

	// DryRun reports the intended transition without applying or
	// cascading anything.
	DryRun bool
}

// Run performs one guarded mutation against one target. It always returns a
// result; errors encountered along the way are recorded on it.
func (r *Runner) Run(ctx context.Context, tgt target.Target, req Request) *model.Result {
	start := time.Now()
	res := &model.Result{
		Host:      tgt.Host,
		Instance:  tgt.Instance,
		FullName:  tgt.FullName(),
		Mutation:  req.Mutation.Name(),
		Status:    model.StatusFailed,
		Timestamp: start,
	}
	defer func() {
		res.Duration = time.Since(start)
	}()

	log := r.Logger.WithTarget(tgt.FullName())

	sess, err := r.Connector.Connect(ctx, tgt, req.Credential)
	if err != nil {
		connErr := dbaerrors.NewConnectionError(tgt.FullName(), err)
		res.Errors = append(res.Errors, connErr)
		res.Message = "connection failed"
		log.Error(connErr, "could not connect to instance")
		return res
	}
	defer sess.Close() //nolint:errcheck

	prior, err := req.Mutation.Read(ctx, sess)
	if err != nil {
		readErr := dbaerrors.NewReadError(tgt.FullName(), err)
		res.Errors = append(res.Errors, readErr)
		res.Message = "state read failed"
		log.Error(readErr, "could not read current state")
		return res
	}
	res.Prior = prior
	res.New = prior
	log.Debugf("current state: exists=%t value=%q", prior.Exists, prior.Value)

	if skip, msg := req.Mutation.Skip(prior); skip {
		res.Status = model.StatusSkipped
		res.Message = msg
		log.Info(msg)
		return res
	}
	if req.SkipIfSatisfied && req.Mutation.Satisfied(prior) {
		res.Status = model.StatusSkipped
		res.Message = "already at desired state"
		log.Info(res.Message)
		return res
	}

	description := req.Mutation.Describe(tgt, prior)

	if r.DryRun {
		res.Status = model.StatusWouldApply
		res.Message = description
		return res
	}

	if err := ctx.Err(); err != nil {
		return r.cancelled(res, log, err)
	}

	if !r.Gate.Confirm(description) {
		res.Status = model.StatusSkipped
		res.Message = "approval rejected"
		log.Info("approval rejected, leaving state unchanged")
		return res
	}

	if err := ctx.Err(); err != nil {
		return r.cancelled(res, log, err)
	}

	if err := req.Mutation.Apply(ctx, sess, prior); err != nil {
		mutErr := dbaerrors.NewMutationError(tgt.FullName(), req.Mutation.Name(), err)
		res.Errors = append(res.Errors, mutErr)
		res.Message = "mutation failed"
		log.Error(mutErr, "mutation failed")
	} else {
		res.Applied = true
		log.Infof("applied %s", req.Mutation.Name())
	}

	if res.Applied {
		r.cascade(ctx, tgt, req, res, log)
	}

	// The result must reflect reality, not intent: re-read runs even after
	// a cascade failure or a cancellation between apply and here.
	verifyCtx := context.WithoutCancel(ctx)
	observed, err := req.Mutation.Read(verifyCtx, sess)
	if err != nil {
		readErr := dbaerrors.NewReadError(tgt.FullName(), err)
		res.Errors = append(res.Errors, readErr)
		res.New = model.State{}
		log.Error(readErr, "post-mutation verification read failed")
	} else {
		res.New = observed
	}

	if res.Applied && !res.Failed() {
		res.Status = model.StatusApplied
		if res.Message == "" {
			res.Message = fmt.Sprintf("%s applied", req.Mutation.Name())
		}
	}

	return res
}

func (r *Runner) cascade(ctx context.Context, tgt target.Target, req Request, res *model.Result, log *logger.Logger) {
	if !req.Force {
		if req.Mutation.RequiresRestart() {
			log.Warn("change will not take effect until the instance services are restarted manually")
		}
		return
	}

	if err := ctx.Err(); err != nil {
		res.Errors = append(res.Errors, dbaerrors.NewCascadeError(tgt.FullName(), "", err))
		res.Message = "cancelled before service restart"
		return
	}

	names := tgt.CascadeServiceNames()
	log.Infof("restarting dependent services %v", names)

	if err := r.Services.StopServices(ctx, tgt.Host, names); err != nil {
		casErr := dbaerrors.NewCascadeError(tgt.FullName(), "", err)
		res.Errors = append(res.Errors, casErr)
		res.Message = "service stop failed"
		log.Error(casErr, "service stop failed, mutation remains applied")
		return
	}
	if err := r.Services.StartServices(ctx, tgt.Host, names); err != nil {
		casErr := dbaerrors.NewCascadeError(tgt.FullName(), "", err)
		res.Errors = append(res.Errors, casErr)
		res.Message = "service start failed"
		log.Error(casErr, "service start failed, mutation remains applied")
		return
	}

	res.CascadeApplied = true
}

func (r *Runner) cancelled(res *model.Result, log *logger.Logger, err error) *model.Result {
	res.Status = model.StatusSkipped
	res.Message = "cancelled"
	res.Errors = append(res.Errors, err)
	log.Warn("cancelled before any change was made")
	return res
}
