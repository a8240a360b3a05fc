package export

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents exported in parallel when
// no limit is given.
const DefaultConcurrency = 4

// Outcome is the result of one job in a batch. Output holds everything the
// job printed, so callers can replay outputs in input order.
type Outcome struct {
	Job    Job
	Output []byte
	Result *Result
	Err    error
}

// ProgressFunc is called once per finished job, in completion order.
type ProgressFunc func(completed, total int, outcome *Outcome)

// Batch exports jobs concurrently, at most concurrency at a time, and
// returns their outcomes in input order. A failing job does not stop the
// others; cancelling ctx does.
func (e *Exporter) Batch(ctx context.Context, jobs []Job, concurrency int, progress ProgressFunc) []*Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		outcome  *Outcome
	}
	resultCh := make(chan indexed, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, job := range jobs {
			g.Go(func() error {
				var buf bytes.Buffer
				outcome := &Outcome{Job: job}
				if err := gctx.Err(); err != nil {
					outcome.Err = err
				} else {
					outcome.Result, outcome.Err = e.Export(gctx, job, &buf)
				}
				outcome.Output = buf.Bytes()
				resultCh <- indexed{position: i, outcome: outcome}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]*Outcome, len(jobs))
	var completed int
	for r := range resultCh {
		completed++
		outcomes[r.position] = r.outcome
		if progress != nil {
			progress(completed, len(jobs), r.outcome)
		}
	}
	return outcomes
}

// Failed counts the outcomes that ended with an error.
func Failed(outcomes []*Outcome) int {
	var n int
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
