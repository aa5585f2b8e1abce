package handler

import (
	"encoding/base64"
	"io"
	"sync"

	"github.com/shamaton/msgpack/v2"

	"github.com/hupe1980/randhunt/engine"
)

// frame is one msgpack-encoded progress snapshot.
type frame struct {
	Progresses    []workerProgress `msgpack:"progresses"`
	CurrentRate   float64          `msgpack:"current_rate"`   // trials per second
	RemainingTime float64          `msgpack:"remaining_time"` // seconds
	Tries         uint64           `msgpack:"tries"`
	AllDone       bool             `msgpack:"all_done"`
}

// workerProgress is the latest known state of one worker.
type workerProgress struct {
	Kind    string `msgpack:"kind"`
	Worker  int    `msgpack:"worker"`
	Chars   string `msgpack:"chars"`
	Current uint64 `msgpack:"current"`
	Total   uint64 `msgpack:"total"`
}

// Msgpack streams a msgpack-encoded progress snapshot to a writer on every
// event. Each frame carries the latest known state of every worker, the
// instantaneous trial rate, and an ETA.
//
// Frames report positions and timing only. Hit counts stay worker-private
// until the run's Result, so the frame layout is not compatible with
// stream consumers that expect per-frame hit counts.
//
// The handler is mutexed, so it is also safe to share outside the engine's
// single-goroutine delivery.
type Msgpack struct {
	mu      sync.Mutex
	w       io.Writer
	base64  bool
	tracker *tracker
}

// NewMsgpack creates a handler writing raw msgpack frames to w.
func NewMsgpack(tries uint64, w io.Writer) *Msgpack {
	return &Msgpack{
		w:       w,
		tracker: newTracker(tries),
	}
}

// NewMsgpackBase64 creates a handler writing each frame as one standard
// base64 string instead of raw bytes, for transports that cannot carry
// binary data.
func NewMsgpackBase64(tries uint64, w io.Writer) *Msgpack {
	h := NewMsgpack(tries, w)
	h.base64 = true
	return h
}

// Handle consumes one progress event. Use it as the builder's
// ProgressHandler.
func (h *Msgpack) Handle(ev engine.ProgressEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := h.tracker.observe(ev)

	f := frame{
		Progresses:    make([]workerProgress, 0, len(snap.events)),
		CurrentRate:   snap.rate,
		RemainingTime: snap.remaining,
		Tries:         h.tracker.tries,
		AllDone:       snap.allDone,
	}
	for _, le := range snap.events {
		f.Progresses = append(f.Progresses, workerProgress{
			Kind:    le.Kind.String(),
			Worker:  le.Worker,
			Chars:   le.Chars,
			Current: le.Current,
			Total:   le.Total,
		})
	}

	b, err := msgpack.Marshal(f)
	if err != nil {
		return err
	}

	if h.base64 {
		b = []byte(base64.StdEncoding.EncodeToString(b))
	}

	_, err = h.w.Write(b)
	return err
}
