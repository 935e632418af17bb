package batch

import (
	"context"

	"github.com/abhisek/jimang/internal/logger"
	"github.com/abhisek/jimang/internal/recommend"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result for one input row. Exactly one of Result and Err
// is set.
type Outcome struct {
	Line   int
	Result *recommend.Result
	Err    error
}

// Runner recommends schools for many students concurrently.
type Runner struct {
	engine  *recommend.Engine
	workers int
	log     *logger.Logger
}

// NewRunner creates a Runner. workers < 1 is treated as 1.
func NewRunner(engine *recommend.Engine, workers int, log *logger.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{engine: engine, workers: workers, log: log}
}

// Run processes rows and returns outcomes in input order. A bad row yields
// an Outcome with Err; it never aborts the batch. Run returns an error only
// when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, rows []Row) ([]Outcome, error) {
	batchID := uuid.New().String()
	log := r.log.With("batch_id", batchID)
	log.Info("batch started", "rows", len(rows), "workers", r.workers)

	out := make([]Outcome, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = r.process(row)
			if out[i].Err != nil {
				log.Warn("row rejected", "line", row.Line, "error", out[i].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("batch finished", "rows", len(rows))
	return out, nil
}

func (r *Runner) process(row Row) Outcome {
	if row.ParseErr != nil {
		return Outcome{Line: row.Line, Err: row.ParseErr}
	}
	p, err := recommend.ParseProfile(row.Request)
	if err != nil {
		return Outcome{Line: row.Line, Err: err}
	}
	res := r.engine.Recommend(p)
	return Outcome{Line: row.Line, Result: &res}
}
