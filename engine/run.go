package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run executes the research across cfg.Workers parallel workers. It blocks
// until every worker has finished and the coordinator has delivered every
// progress event, then merges the per-worker tallies into one Result.
//
// Cancelling ctx stops the run gracefully and returns the partial Result
// with a nil error; a primitive failure inside a worker cancels the
// remaining workers and returns a *WorkerError.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Matcher == nil {
		return nil, ErrNoMatcher
	}
	if cfg.Tries == 0 {
		return &Result{HitDetail: map[string]uint64{}, Hits: []HitCount{}}, nil
	}

	cfg = cfg.normalized()

	log := cfg.Logger.With("run_id", uuid.NewString())
	start := time.Now()

	ranges := Partition(cfg.Tries, cfg.Workers)

	// Build every source up front so a factory failure aborts before any
	// worker starts.
	sources := make([]Source, len(ranges))
	for i, span := range ranges {
		src, err := cfg.Source(span.Worker)
		if err != nil {
			return nil, &WorkerError{Worker: span.Worker, Err: err}
		}
		sources[i] = src
	}

	events := make(chan ProgressEvent, cfg.ProgressBuffer)
	tallies := make([]*tally, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, span := range ranges {
		t := newTally()
		tallies[i] = t

		w := &worker{
			span:         span,
			totalWorkers: len(ranges),
			source:       sources[i],
			matcher:      cfg.Matcher,
			limiter:      newProgressLimiter(cfg.ProgressInterval),
			tally:        t,
			emit:         func(ev ProgressEvent) { events <- ev },
			log:          log,
			metrics:      cfg.Metrics,
		}
		g.Go(func() error { return w.run(gctx) })
	}

	coord := &coordinator{
		events:  events,
		handler: cfg.ProgressHandler,
		workers: len(ranges),
		log:     log,
	}
	coord.run()

	err := g.Wait()

	res := buildResult(tallies)
	cfg.Metrics.RecordRun(res.Tries, res.HitsTotal, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return res, nil
}

// RunSequential executes the whole trial range on the caller's goroutine
// with no extra concurrency. The single range carries worker ID 0, and the
// progress handler is invoked inline, subject to the same rate limit as
// the parallel mode.
func RunSequential(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Matcher == nil {
		return nil, ErrNoMatcher
	}
	if cfg.Tries == 0 {
		return &Result{HitDetail: map[string]uint64{}, Hits: []HitCount{}}, nil
	}

	cfg.Workers = 1
	cfg = cfg.normalized()

	log := cfg.Logger.With("run_id", uuid.NewString())
	start := time.Now()

	span := Partition(cfg.Tries, 1)[0]

	src, err := cfg.Source(span.Worker)
	if err != nil {
		return nil, &WorkerError{Worker: span.Worker, Err: err}
	}

	coord := &coordinator{handler: cfg.ProgressHandler, workers: 1, log: log}

	t := newTally()
	w := &worker{
		span:         span,
		totalWorkers: 1,
		source:       src,
		matcher:      cfg.Matcher,
		limiter:      newProgressLimiter(cfg.ProgressInterval),
		tally:        t,
		emit:         coord.dispatch,
		log:          log,
		metrics:      cfg.Metrics,
	}

	err = w.run(ctx)

	res := buildResult([]*tally{t})
	cfg.Metrics.RecordRun(res.Tries, res.HitsTotal, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return res, nil
}
