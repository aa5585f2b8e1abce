package engine

import "sort"

// HitCount is one row of the aggregated hit list.
type HitCount struct {
	// Chars is the hit string in display form.
	Chars string

	// Hits is how often the string was hit across all workers.
	Hits uint64

	// FirstSeen is the global trial index of the earliest hit.
	FirstSeen uint64
}

// Result is the outcome of a completed or cancelled run. It is built once
// after every worker has finished and never mutated afterwards.
type Result struct {
	// Tries is the number of trials actually processed. Under cancellation
	// this is less than the configured total; callers must treat this
	// value, not the configuration, as authoritative.
	Tries uint64

	// HitsTotal is the sum of all counts in HitDetail.
	HitsTotal uint64

	// HitDetail maps each hit string (display form) to its count.
	HitDetail map[string]uint64

	// Hits lists the hit strings sorted by descending count, ties broken
	// by ascending display string.
	Hits []HitCount
}

// buildResult merges the per-worker tallies into one Result. Merge order
// is irrelevant; counts are commutative sums.
func buildResult(tallies []*tally) *Result {
	merged := make(map[string]*hitRecord)

	var tries uint64
	for _, t := range tallies {
		if t == nil {
			continue
		}
		tries += t.processed
		merge(merged, t)
	}

	detail := make(map[string]uint64, len(merged))
	hits := make([]HitCount, 0, len(merged))

	var hitsTotal uint64
	for chars, rec := range merged {
		detail[chars] = rec.count
		hitsTotal += rec.count
		hits = append(hits, HitCount{Chars: chars, Hits: rec.count, FirstSeen: rec.firstSeen})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Hits != hits[j].Hits {
			return hits[i].Hits > hits[j].Hits
		}
		return hits[i].Chars < hits[j].Chars
	})

	return &Result{
		Tries:     tries,
		HitsTotal: hitsTotal,
		HitDetail: detail,
		Hits:      hits,
	}
}
