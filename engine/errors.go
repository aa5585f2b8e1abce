package engine

import (
	"errors"
	"fmt"
)

// ErrNoMatcher is returned when a run is started without a matcher.
var ErrNoMatcher = errors.New("no matcher configured")

// WorkerError reports a generation or match primitive failure inside one
// worker. The engine cancels the remaining workers gracefully before
// returning it.
//
// The originating error can be accessed via errors.Unwrap.
type WorkerError struct {
	Worker int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }
