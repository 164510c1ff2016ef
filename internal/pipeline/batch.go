package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunBatch converts jobs with at most opts.Jobs conversions in flight.
// Every job runs independently: a failure is recorded in its Result and does
// not stop the others. Results keep the order of jobs. Once ctx is done,
// jobs that have not started are reported as skipped.
//
// onDone, when set, is called once per job and may be called concurrently.
func RunBatch(ctx context.Context, jobs []Job, opts Options, onDone func(Result)) []Result {
	limit := opts.Jobs
	if limit < 1 {
		limit = 1
	}

	results := make([]Result, len(jobs))
	done := func(i int, r Result) {
		results[i] = r
		if onDone != nil {
			onDone(r)
		}
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, job := range jobs {
		i, job := i, job
		if err := ctx.Err(); err != nil {
			done(i, Result{Job: job, Status: StatusSkipped, Err: err})
			continue
		}
		g.Go(func() error {
			done(i, Run(ctx, job, opts))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Summary counts results by status.
type Summary struct {
	Total, OK, Failed, Skipped, Rows int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.OK++
			s.Rows += r.Rows
		case StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}
