package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/mdslim/pkg/slim"
)

// Runner processes a file set through a slim.Pipeline.
type Runner struct {
	Pipeline *slim.Pipeline
}

// New creates a Runner with the given pipeline.
func New(pipeline *slim.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under the source root and slims them
// concurrently. Documents are independent, so file order has no effect
// on output; results are still returned in deterministic (sorted path)
// order. Per-file failures land in FileOutcome.Error and never abort
// the batch.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	srcRoot, destRoot, err := opts.resolveRoots()
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, srcRoot, destRoot)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-key by path so the final
	// result follows discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	srcRoot, destRoot string,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		destPath, err := DestPath(path, srcRoot, destRoot)
		if err != nil {
			outcome.Error = err
		} else {
			res, err := r.Pipeline.ProcessFile(ctx, path, destPath)
			if err != nil {
				outcome.Error = err
			} else {
				outcome.Result = res
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
