package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Prasad4455/dbatools/internal/approval"
	"github.com/Prasad4455/dbatools/internal/logger"
	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/mssql"
	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/service"
	"github.com/Prasad4455/dbatools/internal/target"
	"github.com/Prasad4455/dbatools/internal/tui"
)

// runParams bundles everything a mutation command resolved from its flags.
type runParams struct {
	opts     batchOptions
	mutation mutator.Mutation
	force    bool
	skipIf   bool
	title    string
}

func runMutationBatch(p runParams) error {
	targets, cred, settings, err := resolveBatch(&p.opts)
	if err != nil {
		return err
	}

	level := "info"
	if p.opts.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	var gate mutator.ApprovalGate = approval.AutoApprove{}
	if p.opts.confirm {
		if approval.Interactive() {
			gate = approval.NewPrompt()
		} else {
			log.Warn("--confirm requested without a terminal, proceeding unattended")
		}
	}

	runner := &mutator.Runner{
		Connector: mssql.NewConnector(),
		Services:  service.NewScController(log),
		Gate:      gate,
		Logger:    log,
		DryRun:    p.opts.dryRun,
	}

	req := mutator.Request{
		Mutation:        p.mutation,
		Force:           p.force,
		SkipIfSatisfied: p.skipIf,
		Credential:      cred,
	}

	batchOpts := mutator.BatchOptions{
		Parallel: settings.Parallel,
		Timeout:  time.Duration(settings.Timeout) * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interactive prompting and the full-screen progress view cannot share
	// the terminal; --confirm runs fall back to plain output.
	interactive := term.IsTerminal(int(os.Stdout.Fd())) && !p.opts.confirm

	results := dispatchBatch(ctx, runner, targets, req, batchOpts, p.title, interactive)

	return summarize(results)
}

func dispatchBatch(ctx context.Context, runner *mutator.Runner, targets []target.Target,
	req mutator.Request, opts mutator.BatchOptions, title string, interactive bool) []model.Result {

	state := tui.NewModel(title, targets, !interactive)

	var program *tea.Program
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(state)
		go func() {
			_, _ = program.Run()
			close(done)
		}()

		opts.OnStart = func(tgt target.Target) {
			program.Send(tui.TargetStartMsg{FullName: tgt.FullName(), Time: time.Now()})
		}
		opts.OnResult = func(res model.Result) {
			program.Send(tui.TargetCompleteMsg{Result: res})
		}
	} else {
		opts.OnResult = func(res model.Result) {
			updated, _ := state.Update(tui.TargetCompleteMsg{Result: res})
			if m, ok := updated.(tui.Model); ok {
				state = m
			}
		}
	}

	results := runner.RunBatch(ctx, targets, req, opts)

	if interactive {
		program.Send(tea.QuitMsg{})
		<-done
	} else {
		fmt.Fprintln(os.Stdout, state.View())
	}

	return results
}

func summarize(results []model.Result) error {
	failed := 0
	for i := range results {
		if results[i].Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}
