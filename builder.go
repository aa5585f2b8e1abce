// This file implements the fluent builder API for configuring and running
// a research. The builder is immutable - each method returns a new builder
// with the updated configuration.
package randhunt

import (
	"context"
	"regexp"
	"runtime"
	"time"

	"github.com/hupe1980/randhunt/engine"
	"github.com/hupe1980/randhunt/symbol"
)

// Research creates a new research builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents
// accidental state sharing.
//
// Tries, Times, and Pattern (or Matcher) are mandatory; both terminal
// operations validate them before any worker starts and return a
// *ConfigError when they are missing or out of range.
//
// Example:
//
//	result, err := randhunt.Research().
//	    Tries(1_000_000).
//	    Times(2).
//	    Pattern(regexp.MustCompile("WKCNWKCN")).
//	    Workers(8).
//	    RunParallel(ctx)
func Research() ResearchBuilder {
	return ResearchBuilder{
		progressInterval: engine.DefaultProgressInterval,
	}
}

// ResearchBuilder is an immutable fluent builder for research runs.
// Each method returns a new builder with the updated configuration.
type ResearchBuilder struct {
	tries            uint64
	triesSet         bool
	times            int
	timesSet         bool
	matcher          engine.Matcher
	source           engine.SourceFactory
	workers          int
	progressInterval time.Duration
	progressHandler  engine.ProgressHandler
	progressBuffer   int
	seed             *uint64
	logger           *Logger
	metrics          MetricsCollector
}

// Tries sets the total number of generate/check trials. Mandatory;
// must be greater than zero.
func (b ResearchBuilder) Tries(tries uint64) ResearchBuilder {
	b.tries = tries
	b.triesSet = true
	return b
}

// Times sets the shape of generated strings: the four-symbol alphabet
// repeated n times, so every generated string has length 4n. Mandatory;
// must be greater than zero.
func (b ResearchBuilder) Times(n int) ResearchBuilder {
	b.times = n
	b.timesSet = true
	return b
}

// Pattern sets the hit pattern as a compiled regular expression matched
// against the internal symbol form (W K C N).
func (b ResearchBuilder) Pattern(re *regexp.Regexp) ResearchBuilder {
	b.matcher = engine.MatcherFunc(func(s symbol.Symbols) (bool, error) {
		return re.MatchString(string(s)), nil
	})
	return b
}

// Matcher sets a custom hit predicate in place of Pattern. The matcher is
// shared by all workers and must be safe for concurrent use.
func (b ResearchBuilder) Matcher(m engine.Matcher) ResearchBuilder {
	b.matcher = m
	return b
}

// Source sets a custom per-worker string source factory in place of the
// default shuffle generation. Primarily useful for deterministic tests.
func (b ResearchBuilder) Source(f engine.SourceFactory) ResearchBuilder {
	b.source = f
	return b
}

// Workers sets the parallelism degree for RunParallel.
// Default: the logical core count.
func (b ResearchBuilder) Workers(n int) ResearchBuilder {
	b.workers = n
	return b
}

// ProgressInterval throttles Processing events to at most one per worker
// per interval. Zero lifts the throttle; Idle and Done events are never
// throttled. Default: 500ms.
func (b ResearchBuilder) ProgressInterval(d time.Duration) ResearchBuilder {
	b.progressInterval = d
	return b
}

// ProgressHandler sets the progress event consumer. It is invoked
// synchronously on the coordinator's goroutine; a slow handler creates
// back-pressure on the progress channel. Default: no delivery.
func (b ResearchBuilder) ProgressHandler(h engine.ProgressHandler) ResearchBuilder {
	b.progressHandler = h
	return b
}

// ProgressBuffer sets the progress channel capacity, the back-pressure
// bound between workers and the coordinator.
// Default: twice the worker count.
func (b ResearchBuilder) ProgressBuffer(n int) ResearchBuilder {
	b.progressBuffer = n
	return b
}

// Seed makes the default shuffle sources deterministic. Each worker still
// derives its own independent stream from the seed. If not set, a random
// seed per run is used.
func (b ResearchBuilder) Seed(seed uint64) ResearchBuilder {
	b.seed = &seed
	return b
}

// Logger sets the structured logger for run tracing.
func (b ResearchBuilder) Logger(l *Logger) ResearchBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b ResearchBuilder) Metrics(mc MetricsCollector) ResearchBuilder {
	b.metrics = mc
	return b
}

// preflight validates the builder and assembles the engine configuration.
func (b ResearchBuilder) preflight() (engine.Config, error) {
	switch {
	case !b.triesSet:
		return engine.Config{}, &ConfigError{Kind: MissingRequiredField, Field: "tries"}
	case !b.timesSet:
		return engine.Config{}, &ConfigError{Kind: MissingRequiredField, Field: "times"}
	case b.matcher == nil:
		return engine.Config{}, &ConfigError{Kind: MissingRequiredField, Field: "pattern"}
	}

	switch {
	case b.tries == 0:
		return engine.Config{}, &ConfigError{Kind: InvalidValue, Field: "tries", Reason: "must be greater than zero"}
	case b.times <= 0:
		return engine.Config{}, &ConfigError{Kind: InvalidValue, Field: "times", Reason: "must be greater than zero"}
	case b.workers < 0:
		return engine.Config{}, &ConfigError{Kind: InvalidValue, Field: "workers", Reason: "cannot be negative"}
	case b.progressInterval < 0:
		return engine.Config{}, &ConfigError{Kind: InvalidValue, Field: "progress interval", Reason: "cannot be negative"}
	}

	cfg := engine.Config{
		Tries:            b.tries,
		Times:            b.times,
		Matcher:          b.matcher,
		Source:           b.source,
		Workers:          b.workers,
		ProgressInterval: b.progressInterval,
		ProgressHandler:  b.progressHandler,
		ProgressBuffer:   b.progressBuffer,
		Seed:             b.seed,
		Metrics:          b.metrics,
	}
	if b.logger != nil {
		cfg.Logger = b.logger.Logger
	}

	return cfg, nil
}

// execute wraps a run with lifecycle logging on the configured Logger.
func (b ResearchBuilder) execute(ctx context.Context, cfg engine.Config, run func(context.Context, engine.Config) (*Result, error)) (*Result, error) {
	log := b.logger
	if log == nil {
		log = NoopLogger()
	}
	log = log.WithTries(cfg.Tries)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.LogRunStart(ctx, workers)
	start := time.Now()

	res, err := run(ctx, cfg)
	if err != nil {
		log.LogRunComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	if res.Tries < cfg.Tries {
		log.LogCancelled(ctx, res.Tries, cfg.Tries)
	}
	log.LogRunComplete(ctx, res.Tries, res.HitsTotal, time.Since(start), nil)

	return res, nil
}

// RunParallel validates the configuration and executes the research across
// the configured number of workers. It blocks until the run completes, is
// cancelled via ctx, or a worker fails.
func (b ResearchBuilder) RunParallel(ctx context.Context) (*Result, error) {
	cfg, err := b.preflight()
	if err != nil {
		return nil, err
	}
	return b.execute(ctx, cfg, engine.Run)
}

// RunSequential validates the configuration and executes the research on
// the caller's goroutine with no extra concurrency. The single worker
// carries ID 0.
func (b ResearchBuilder) RunSequential(ctx context.Context) (*Result, error) {
	cfg, err := b.preflight()
	if err != nil {
		return nil, err
	}
	cfg.Workers = 1
	return b.execute(ctx, cfg, engine.RunSequential)
}
