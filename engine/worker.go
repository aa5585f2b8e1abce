package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// worker executes the generate/check loop for one Range. All of its state
// is private; the only shared resources it touches are the progress emit
// path and the run context.
type worker struct {
	span         Range
	totalWorkers int
	source       Source
	matcher      Matcher
	limiter      *rate.Limiter
	tally        *tally
	emit         func(ProgressEvent)
	log          *slog.Logger
	metrics      MetricsCollector
}

// newProgressLimiter returns the per-worker Processing throttle. A
// non-positive interval lifts the throttle entirely.
func newProgressLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// run processes the worker's range. It emits one Idle event up front and
// exactly one Done event on exit, whether it completed, was cancelled, or
// failed. Cancellation is not an error: the worker returns nil with a
// partial tally.
func (w *worker) run(ctx context.Context) error {
	start := time.Now()
	total := w.span.Size()

	w.emit(ProgressEvent{
		Kind:         KindIdle,
		Worker:       w.span.Worker,
		Total:        total,
		TotalWorkers: w.totalWorkers,
	})

	defer func() {
		w.emit(ProgressEvent{
			Kind:         KindDone,
			Worker:       w.span.Worker,
			Total:        total,
			TotalWorkers: w.totalWorkers,
		})
		w.metrics.RecordWorker(w.span.Worker, w.tally.processed, time.Since(start))
	}()

	for i := uint64(0); i < total; i++ {
		if ctx.Err() != nil {
			w.log.Debug("worker cancelled",
				"worker", w.span.Worker,
				"processed", w.tally.processed,
			)
			return nil
		}

		s, err := w.source.Next()
		if err != nil {
			return &WorkerError{Worker: w.span.Worker, Err: err}
		}

		if w.limiter.Allow() {
			w.emit(ProgressEvent{
				Kind:         KindProcessing,
				Worker:       w.span.Worker,
				Chars:        s.Display(),
				Current:      i,
				Total:        total,
				TotalWorkers: w.totalWorkers,
			})
		}

		ok, err := w.matcher.Match(s)
		if err != nil {
			return &WorkerError{Worker: w.span.Worker, Err: err}
		}
		if ok {
			w.tally.add(s.Display(), w.span.Start+i)
		}

		w.tally.processed++
	}

	return nil
}
