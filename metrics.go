package randhunt

import (
	"sync/atomic"
	"time"
)

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	TriesTotal     atomic.Int64
	HitsTotal      atomic.Int64
	WorkerCount    atomic.Int64
	WorkerTries    atomic.Int64
	WorkerMaxNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(tries, hits uint64, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.TriesTotal.Add(int64(tries))
	b.HitsTotal.Add(int64(hits))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordWorker implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWorker(worker int, processed uint64, duration time.Duration) {
	b.WorkerCount.Add(1)
	b.WorkerTries.Add(int64(processed))

	// Monotonic max; collisions only lose a slower sample.
	nanos := duration.Nanoseconds()
	for {
		cur := b.WorkerMaxNanos.Load()
		if nanos <= cur || b.WorkerMaxNanos.CompareAndSwap(cur, nanos) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunAvgNanos:    b.avgRunNanos(),
		TriesTotal:     b.TriesTotal.Load(),
		HitsTotal:      b.HitsTotal.Load(),
		WorkerCount:    b.WorkerCount.Load(),
		WorkerTries:    b.WorkerTries.Load(),
		WorkerMaxNanos: b.WorkerMaxNanos.Load(),
	}
}

func (b *BasicMetricsCollector) avgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount       int64
	RunErrors      int64
	RunAvgNanos    int64
	TriesTotal     int64
	HitsTotal      int64
	WorkerCount    int64
	WorkerTries    int64
	WorkerMaxNanos int64
}
