package mutator

import (
	"context"
	"sync"
	"time"

	"github.com/Prasad4455/dbatools/internal/model"
	"github.com/Prasad4455/dbatools/internal/target"
)

// BatchOptions tunes batch execution.
type BatchOptions struct {
	// Parallel bounds concurrent target processing. Values below 1 mean
	// sequential.
	Parallel int

	// Timeout is the per-target workflow deadline. Zero disables it.
	Timeout time.Duration

	// OnStart, when set, is invoked as each target begins processing.
	OnStart func(tgt target.Target)

	// OnResult, when set, is invoked as each target finishes.
	OnResult func(res model.Result)
}

// RunBatch applies the request to every target. Targets share no mutable
// state and are fault-isolated: any failure on one target, of any category,
// never aborts the others. Results are returned in input order.
func (r *Runner) RunBatch(ctx context.Context, targets []target.Target, req Request, opts BatchOptions) []model.Result {
	results := make([]model.Result, len(targets))

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	pool := make(chan struct{}, parallel)

	for i, tgt := range targets {
		wg.Add(1)
		go func(i int, tgt target.Target) {
			defer wg.Done()

			pool <- struct{}{}
			defer func() { <-pool }()

			if opts.OnStart != nil {
				mu.Lock()
				opts.OnStart(tgt)
				mu.Unlock()
			}

			tgtCtx := ctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				tgtCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}

			res := r.Run(tgtCtx, tgt, req)
			results[i] = *res

			if opts.OnResult != nil {
				mu.Lock()
				opts.OnResult(*res)
				mu.Unlock()
			}
		}(i, tgt)
	}

	wg.Wait()
	return results
}
