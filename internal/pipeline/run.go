package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"gql2csv/internal/engine"
	"gql2csv/internal/export"

	"go.uber.org/zap"
)

type Options struct {
	BoolStyle export.BoolStyle
	Jobs      int // batch concurrency; values below 1 mean 1
	Logger    *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Run converts one schema file into a mapping sheet. The destination file is
// only created once the schema has been parsed and flattened.
func Run(ctx context.Context, job Job, opts Options) Result {
	start := time.Now()
	res := Result{Job: job, Status: StatusFailed}
	log := opts.logger().With(zap.String("source", job.Source))

	fail := func(err error) Result {
		res.Err = err
		res.Elapsed = time.Since(start)
		log.Debug("Conversion failed", zap.Error(err))
		return res
	}

	if err := ctx.Err(); err != nil {
		res.Status = StatusSkipped
		return fail(err)
	}
	if err := Validate(job.Source, job.Destination); err != nil {
		return fail(err)
	}

	text, err := os.ReadFile(job.Source)
	if err != nil {
		return fail(fmt.Errorf("failed to read %s: %w: %w", job.Source, engine.ErrIO, err))
	}

	rows, err := engine.ConvertSource(job.Source, string(text))
	if err != nil {
		return fail(err)
	}
	res.Rows = len(rows)
	res.Types = engine.CountTypes(rows)
	log.Debug("Schema flattened", zap.Int("types", res.Types), zap.Int("rows", res.Rows))

	written, err := export.WriteCSV(rows, job.Destination,
		export.WithBoolStyle(opts.BoolStyle),
		export.WithLogger(log),
	)
	res.CreatedDir = written.CreatedDir
	if err != nil {
		return fail(err)
	}

	res.Status = StatusOK
	res.Elapsed = time.Since(start)
	log.Info("Mapping spreadsheet created", zap.String("destination", job.Destination), zap.Int("rows", res.Rows))
	return res
}
