package engine

import "log/slog"

// coordinator drains the progress channel on the caller's goroutine and
// invokes the handler for each event in receipt order. It terminates after
// observing a Done event from every worker; workers emit nothing after
// their Done, so the channel is quiescent once the coordinator returns.
type coordinator struct {
	events  <-chan ProgressEvent
	handler ProgressHandler
	workers int
	log     *slog.Logger
}

func (c *coordinator) run() {
	remaining := c.workers
	for remaining > 0 {
		ev := <-c.events
		if ev.Kind == KindDone {
			remaining--
		}
		c.dispatch(ev)
	}
}

// dispatch delivers one event. Progress delivery is best-effort: handler
// errors and panics are logged and the run continues.
func (c *coordinator) dispatch(ev ProgressEvent) {
	if c.handler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("progress handler panicked",
				"worker", ev.Worker,
				"kind", ev.Kind.String(),
				"panic", r,
			)
		}
	}()

	if err := c.handler(ev); err != nil {
		c.log.Warn("progress handler failed",
			"worker", ev.Worker,
			"kind", ev.Kind.String(),
			"error", err,
		)
	}
}
