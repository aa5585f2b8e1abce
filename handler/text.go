package handler

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/randhunt/engine"
)

// Text renders a human-readable per-worker progress display, redrawing in
// place on ANSI terminals. Each observation prints one line per worker and
// a totals line with the trial rate and the estimated time remaining.
type Text struct {
	mu      sync.Mutex
	w       io.Writer
	tracker *tracker
	lines   int
}

// NewText creates a handler writing the progress display to w.
func NewText(tries uint64, w io.Writer) *Text {
	return &Text{
		w:       w,
		tracker: newTracker(tries),
	}
}

// Handle consumes one progress event. Use it as the builder's
// ProgressHandler.
func (h *Text) Handle(ev engine.ProgressEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := h.tracker.observe(ev)

	var b strings.Builder
	if h.lines > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", h.lines) // move back over the previous block
	}

	for _, le := range snap.events {
		current := le.Current
		if le.Kind == engine.KindDone {
			current = le.Total
		}
		fmt.Fprintf(&b, "\x1b[2K#%d %-10s %s %d/%d\n",
			le.Worker, le.Kind.String(), le.Chars, current, le.Total)
	}

	eta := time.Duration(snap.remaining * float64(time.Second)).Round(time.Second)
	fmt.Fprintf(&b, "\x1b[2Ktotal %d/%d (%.1f%%) %.0f/s eta %s\n",
		snap.current, h.tracker.tries,
		percentOf(snap.current, h.tracker.tries),
		snap.rate, eta,
	)

	h.lines = len(snap.events) + 1

	_, err := io.WriteString(h.w, b.String())
	return err
}

func percentOf(n, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
