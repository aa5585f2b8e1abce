package engine

import (
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/hupe1980/randhunt/symbol"
)

// DefaultProgressInterval is the builder's default Processing-event
// throttle.
const DefaultProgressInterval = 500 * time.Millisecond

// Config carries a validated research configuration. The root package's
// ResearchBuilder is the public way to assemble one; it performs the
// pre-flight validation, so the engine treats a Config as trusted input.
// A Config must not be mutated once a run has started.
type Config struct {
	// Tries is the total number of generate/check trials. Must be > 0.
	Tries uint64

	// Times is the shape of generated strings: the alphabet repeated Times
	// times, string length 4*Times. Must be > 0.
	Times int

	// Matcher decides hits. Required.
	Matcher Matcher

	// Source builds the per-worker random source. Nil means shuffle
	// generation seeded per worker (see Seed).
	Source SourceFactory

	// Workers is the parallelism degree. Zero means the logical core
	// count. The engine clamps it so no worker owns an empty range.
	Workers int

	// ProgressInterval throttles Processing events per worker: at most one
	// per interval. Zero means unthrottled (every trial emits).
	ProgressInterval time.Duration

	// ProgressHandler receives progress events on the coordinator's
	// goroutine. Nil means no delivery.
	ProgressHandler ProgressHandler

	// ProgressBuffer is the progress channel capacity. Zero means twice
	// the worker count.
	ProgressBuffer int

	// Seed makes default shuffle sources deterministic. Nil means a
	// random seed per run. Ignored when Source is set.
	Seed *uint64

	// Logger receives structured run logs. Nil disables logging.
	Logger *slog.Logger

	// Metrics receives run and worker measurements. Nil disables metrics.
	Metrics MetricsCollector
}

// normalized returns a copy of cfg with every optional field filled in.
func (cfg Config) normalized() Config {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if uint64(cfg.Workers) > cfg.Tries {
		cfg.Workers = int(cfg.Tries)
	}

	if cfg.ProgressBuffer <= 0 {
		cfg.ProgressBuffer = cfg.Workers * 2
	}

	if cfg.Source == nil {
		seed := rand.Uint64()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		times := cfg.Times
		cfg.Source = func(worker int) (Source, error) {
			return symbol.NewShuffleSource(times, seed, uint64(worker)+1), nil
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NoopMetricsCollector{}
	}

	return cfg
}
