package engine

// Range is a contiguous half-open slice [Start, End) of the trial space,
// owned by exactly one worker for the duration of a run. Worker is
// 1-indexed; 0 marks the sequential single-worker mode.
type Range struct {
	Worker int
	Start  uint64
	End    uint64
}

// Size returns the number of trials in the range.
func (r Range) Size() uint64 { return r.End - r.Start }

// Partition splits total trials into workers contiguous ranges whose sizes
// differ by at most one, the remainder going to the first ranges. The
// union covers [0, total) exactly once. Partition is deterministic; it
// performs range arithmetic only.
func Partition(total uint64, workers int) []Range {
	if workers <= 1 {
		return []Range{{Worker: 0, Start: 0, End: total}}
	}

	size := total / uint64(workers)
	rem := total % uint64(workers)

	ranges := make([]Range, 0, workers)

	var start uint64
	for i := range workers {
		end := start + size
		if uint64(i) < rem {
			end++
		}
		ranges = append(ranges, Range{Worker: i + 1, Start: start, End: end})
		start = end
	}

	return ranges
}
