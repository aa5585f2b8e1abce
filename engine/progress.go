package engine

// ProgressKind discriminates the progress event variants.
type ProgressKind uint8

const (
	// KindIdle is emitted once per worker before it starts its range.
	KindIdle ProgressKind = iota
	// KindProcessing reports a worker's position inside its range. Emission
	// is rate-limited to at most one event per progress interval.
	KindProcessing
	// KindDone is the terminal event of a worker; it is emitted exactly
	// once, on normal completion, cancellation, and failure alike.
	KindDone
)

// String implements fmt.Stringer.
func (k ProgressKind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindProcessing:
		return "processing"
	case KindDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent is a point-in-time status update from one worker. Events
// from the same worker arrive at the handler in emission order; no order
// is defined across workers.
type ProgressEvent struct {
	Kind         ProgressKind
	Worker       int
	Chars        string // display form of the current string, Processing only
	Current      uint64 // trials finished by this worker, Processing only
	Total        uint64 // trials assigned to this worker
	TotalWorkers int
}

// ProgressHandler consumes progress events. It is invoked synchronously on
// the coordinator's goroutine, so a slow handler creates back-pressure on
// the progress channel. A non-nil error is logged and does not abort the
// run.
type ProgressHandler func(ProgressEvent) error
