package engine

import "time"

// MetricsCollector receives operational measurements from the engine.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordRun is called once per run with the authoritative trial count,
	// the total hit count, the wall-clock duration, and the run error (nil
	// on success and on cancellation).
	RecordRun(tries, hits uint64, duration time.Duration, err error)

	// RecordWorker is called as each worker finishes with the number of
	// trials it actually processed.
	RecordWorker(worker int, processed uint64, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(uint64, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordWorker(int, uint64, time.Duration)        {}
