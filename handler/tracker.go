package handler

import (
	"time"

	"github.com/hupe1980/randhunt/engine"
	"github.com/hupe1980/randhunt/internal/diff"
)

// snapshot is the aggregated view of a run at one observation.
type snapshot struct {
	events    []engine.ProgressEvent // latest per worker, first-seen order
	current   uint64
	rate      float64 // trials per second
	remaining float64 // seconds
	allDone   bool
}

// tracker folds the per-worker event stream into run-wide snapshots. It
// remembers the latest event per worker and derives the trial rate and the
// remaining time from the growth of the summed position between
// observations.
type tracker struct {
	tries  uint64
	latest map[int]engine.ProgressEvent
	order  []int
	diff   *diff.Store[uint64]
	last   time.Time
	done   int
}

func newTracker(tries uint64) *tracker {
	return &tracker{
		tries:  tries,
		latest: make(map[int]engine.ProgressEvent),
		diff:   diff.New[uint64](0),
		last:   time.Now(),
	}
}

func (t *tracker) observe(ev engine.ProgressEvent) snapshot {
	if _, seen := t.latest[ev.Worker]; !seen {
		t.order = append(t.order, ev.Worker)
	}
	t.latest[ev.Worker] = ev

	if ev.Kind == engine.KindDone {
		t.done++
	}

	current := t.currentTotal()

	now := time.Now()
	elapsed := now.Sub(t.last).Seconds()
	t.last = now

	d := t.diff.Update(current)

	var rate, remaining float64
	if elapsed > 0 {
		rate = float64(d) / elapsed
	}
	if rate > 0 {
		remaining = float64(t.tries-current) / rate
	}

	events := make([]engine.ProgressEvent, 0, len(t.order))
	for _, worker := range t.order {
		events = append(events, t.latest[worker])
	}

	return snapshot{
		events:    events,
		current:   current,
		rate:      rate,
		remaining: remaining,
		allDone:   ev.TotalWorkers > 0 && t.done >= ev.TotalWorkers,
	}
}

// currentTotal sums the latest per-worker positions; Done workers count
// with their full range. Clamped to tries.
func (t *tracker) currentTotal() uint64 {
	var total uint64
	for _, ev := range t.latest {
		switch ev.Kind {
		case engine.KindProcessing:
			total += ev.Current
		case engine.KindDone:
			total += ev.Total
		}
	}
	if total > t.tries {
		total = t.tries
	}
	return total
}
