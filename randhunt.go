package randhunt

import (
	"github.com/hupe1980/randhunt/engine"
)

// Re-exported engine types; the engine package holds the run machinery,
// this package is the public surface.
type (
	// Result is the outcome of a completed or cancelled run.
	Result = engine.Result

	// HitCount is one row of Result.Hits.
	HitCount = engine.HitCount

	// ProgressEvent is a point-in-time status update from one worker.
	ProgressEvent = engine.ProgressEvent

	// ProgressKind discriminates progress event variants.
	ProgressKind = engine.ProgressKind

	// ProgressHandler consumes progress events on the coordinator's
	// goroutine.
	ProgressHandler = engine.ProgressHandler

	// WorkerError reports a primitive failure inside one worker.
	WorkerError = engine.WorkerError

	// Matcher decides whether a generated string is a hit.
	Matcher = engine.Matcher

	// MatcherFunc adapts a function to the Matcher interface.
	MatcherFunc = engine.MatcherFunc

	// Source yields generated symbol strings for one worker.
	Source = engine.Source

	// SourceFactory builds the private Source for one worker.
	SourceFactory = engine.SourceFactory

	// MetricsCollector receives operational measurements from the engine.
	MetricsCollector = engine.MetricsCollector

	// NoopMetricsCollector discards all measurements.
	NoopMetricsCollector = engine.NoopMetricsCollector
)

// Progress event kinds.
const (
	KindIdle       = engine.KindIdle
	KindProcessing = engine.KindProcessing
	KindDone       = engine.KindDone
)
