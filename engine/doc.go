// Package engine runs the generate/check research loop in parallel.
//
// A run is orchestrated in three layers:
//   - Partition splits the trial space into contiguous, near-equal ranges,
//     one per worker.
//   - Each worker owns its range, its random source, and its private hit
//     tally; the hot loop touches no shared state.
//   - A coordinator drains a bounded progress channel on the caller's
//     goroutine and hands events to the configured handler, stopping after
//     it has observed a Done event from every worker.
//
// Cancellation is cooperative: workers observe the context once per
// iteration, finish the in-flight trial, emit their Done event, and return
// their partial tally. A cancelled run is not an error; its Result simply
// reports fewer tries than were configured.
package engine
