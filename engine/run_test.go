package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/randhunt/symbol"
)

// cycleSource yields a fixed sequence of strings, wrapping around forever.
type cycleSource struct {
	items []symbol.Symbols
	next  int
}

func (c *cycleSource) Next() (symbol.Symbols, error) {
	s := c.items[c.next%len(c.items)]
	c.next++
	return s, nil
}

// failSource succeeds n times, then fails.
type failSource struct {
	n   int
	err error
}

func (f *failSource) Next() (symbol.Symbols, error) {
	if f.n == 0 {
		return "", f.err
	}
	f.n--
	return "WKCN", nil
}

func cycleFactory(items ...symbol.Symbols) SourceFactory {
	return func(worker int) (Source, error) {
		return &cycleSource{items: items}, nil
	}
}

func matchExactly(want symbol.Symbols) Matcher {
	return MatcherFunc(func(s symbol.Symbols) (bool, error) {
		return s == want, nil
	})
}

func matchNothing() Matcher {
	return MatcherFunc(func(s symbol.Symbols) (bool, error) { return false, nil })
}

func TestRun_RequiresMatcher(t *testing.T) {
	_, err := Run(context.Background(), Config{Tries: 10, Times: 1})
	assert.ErrorIs(t, err, ErrNoMatcher)

	_, err = RunSequential(context.Background(), Config{Tries: 10, Times: 1})
	assert.ErrorIs(t, err, ErrNoMatcher)
}

func TestRun_ZeroTries(t *testing.T) {
	res, err := Run(context.Background(), Config{Times: 1, Matcher: matchNothing()})
	require.NoError(t, err)
	assert.Zero(t, res.Tries)
	assert.Empty(t, res.Hits)
}

func TestRun_NoMatchCountsEveryTrial(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Tries:   1000,
		Times:   1,
		Workers: 4,
		Matcher: matchNothing(),
		Source:  cycleFactory("WKCN"),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), res.Tries)
	assert.Zero(t, res.HitsTotal)
	assert.Empty(t, res.Hits)
}

func TestRun_SequentialAndParallelAgree(t *testing.T) {
	// Every worker's range is a multiple of the cycle length, so both
	// modes see the same multiset of strings.
	cfg := Config{
		Tries:   1000,
		Times:   1,
		Workers: 4,
		Matcher: matchExactly("WKCN"),
		Source:  cycleFactory("WKCN", "NCKW"),
	}

	par, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	seq, err := RunSequential(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, seq.Tries, par.Tries)
	assert.Equal(t, seq.HitsTotal, par.HitsTotal)
	assert.Equal(t, seq.HitDetail, par.HitDetail)
	assert.Equal(t, seq.Hits, par.Hits)

	assert.Equal(t, uint64(500), par.HitsTotal)
	assert.Equal(t, map[string]uint64{"わくちん": 500}, par.HitDetail)
}

func TestRun_PreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, Config{
		Tries:   1_000_000,
		Times:   1,
		Workers: 4,
		Matcher: matchNothing(),
		Source:  cycleFactory("WKCN"),
	})
	require.NoError(t, err)
	assert.Zero(t, res.Tries)
}

func TestRun_CancelMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var once bool
	matcher := MatcherFunc(func(s symbol.Symbols) (bool, error) {
		if !once {
			once = true
			cancel()
		}
		return false, nil
	})

	res, err := RunSequential(ctx, Config{
		Tries:   1_000_000,
		Times:   1,
		Matcher: matcher,
		Source:  cycleFactory("WKCN"),
	})
	require.NoError(t, err)
	assert.Less(t, res.Tries, uint64(1_000_000))
}

func TestRun_SourceFailure(t *testing.T) {
	boom := errors.New("source exhausted")

	_, err := Run(context.Background(), Config{
		Tries:   1000,
		Times:   1,
		Workers: 2,
		Matcher: matchNothing(),
		Source: func(worker int) (Source, error) {
			return &failSource{n: 10, err: boom}, nil
		},
	})
	require.Error(t, err)

	var werr *WorkerError
	require.ErrorAs(t, err, &werr)
	assert.ErrorIs(t, werr, boom)
}

func TestRun_FactoryFailure(t *testing.T) {
	boom := errors.New("no source")

	res, err := Run(context.Background(), Config{
		Tries:   100,
		Times:   1,
		Workers: 2,
		Matcher: matchNothing(),
		Source: func(worker int) (Source, error) {
			if worker == 2 {
				return nil, boom
			}
			return &cycleSource{items: []symbol.Symbols{"WKCN"}}, nil
		},
	})
	require.Error(t, err)
	assert.Nil(t, res)

	var werr *WorkerError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 2, werr.Worker)
}

func TestRun_EventLifecyclePerWorker(t *testing.T) {
	var events []ProgressEvent

	res, err := Run(context.Background(), Config{
		Tries:            90,
		Times:            1,
		Workers:          3,
		Matcher:          matchNothing(),
		Source:           cycleFactory("WKCN"),
		ProgressInterval: 0, // every trial emits
		ProgressHandler: func(ev ProgressEvent) error {
			events = append(events, ev)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(90), res.Tries)

	perWorker := make(map[int][]ProgressEvent)
	for _, ev := range events {
		assert.Equal(t, 3, ev.TotalWorkers)
		perWorker[ev.Worker] = append(perWorker[ev.Worker], ev)
	}
	require.Len(t, perWorker, 3)

	for worker, seq := range perWorker {
		require.NotEmpty(t, seq)
		assert.Equal(t, KindIdle, seq[0].Kind, "worker %d", worker)
		assert.Equal(t, KindDone, seq[len(seq)-1].Kind, "worker %d", worker)

		var done int
		var last uint64
		for _, ev := range seq {
			if ev.Kind == KindDone {
				done++
			}
			if ev.Kind == KindProcessing {
				assert.GreaterOrEqual(t, ev.Current, last)
				last = ev.Current
				assert.Equal(t, "わくちん", ev.Chars)
			}
		}
		assert.Equal(t, 1, done, "worker %d", worker)
	}
}

func TestRun_HandlerErrorDoesNotAbort(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Tries:   100,
		Times:   1,
		Workers: 2,
		Matcher: matchExactly("WKCN"),
		Source:  cycleFactory("WKCN"),
		ProgressHandler: func(ev ProgressEvent) error {
			return errors.New("handler down")
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res.Tries)
	assert.Equal(t, uint64(100), res.HitsTotal)
}

func TestRun_HandlerPanicRecovered(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Tries:   100,
		Times:   1,
		Workers: 2,
		Matcher: matchNothing(),
		Source:  cycleFactory("WKCN"),
		ProgressHandler: func(ev ProgressEvent) error {
			panic("handler bug")
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res.Tries)
}

func TestRunSequential_WorkerZero(t *testing.T) {
	var workers []int

	_, err := RunSequential(context.Background(), Config{
		Tries:   10,
		Times:   1,
		Matcher: matchNothing(),
		Source:  cycleFactory("WKCN"),
		ProgressHandler: func(ev ProgressEvent) error {
			workers = append(workers, ev.Worker)
			assert.Equal(t, 1, ev.TotalWorkers)
			return nil
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, workers)
	for _, w := range workers {
		assert.Zero(t, w)
	}
}

func TestRun_WorkersClampedToTries(t *testing.T) {
	seen := make(map[int]bool)

	res, err := Run(context.Background(), Config{
		Tries:   2,
		Times:   1,
		Workers: 8,
		Matcher: matchNothing(),
		Source:  cycleFactory("WKCN"),
		ProgressHandler: func(ev ProgressEvent) error {
			seen[ev.Worker] = true
			return nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(2), res.Tries)
	assert.Len(t, seen, 2)
}

func TestRun_SeedDeterminism(t *testing.T) {
	seed := uint64(42)

	matcher := MatcherFunc(func(s symbol.Symbols) (bool, error) {
		return strings.HasPrefix(string(s), "W"), nil
	})

	cfg := Config{
		Tries:   5000,
		Times:   2,
		Workers: 4,
		Matcher: matcher,
		Seed:    &seed,
	}

	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a.HitsTotal, b.HitsTotal)
	assert.Equal(t, a.HitDetail, b.HitDetail)
	assert.Equal(t, a.Hits, b.Hits)
}

func TestRun_FirstSeenIsGlobalIndex(t *testing.T) {
	// Only the very last trial of the last worker's range matches.
	target := uint64(999)

	matcher := MatcherFunc(func(s symbol.Symbols) (bool, error) {
		return s == "NNNN", nil
	})

	res, err := RunSequential(context.Background(), Config{
		Tries:   1000,
		Times:   1,
		Matcher: matcher,
		Source: func(worker int) (Source, error) {
			i := uint64(0)
			return sourceFunc(func() (symbol.Symbols, error) {
				s := symbol.Symbols("WKCN")
				if i == target {
					s = "NNNN"
				}
				i++
				return s, nil
			}), nil
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Hits, 1)
	assert.Equal(t, target, res.Hits[0].FirstSeen)
}

type sourceFunc func() (symbol.Symbols, error)

func (f sourceFunc) Next() (symbol.Symbols, error) { return f() }

func TestRun_ProgressThrottle(t *testing.T) {
	var processing int

	_, err := RunSequential(context.Background(), Config{
		Tries:            10_000,
		Times:            1,
		Matcher:          matchNothing(),
		Source:           cycleFactory("WKCN"),
		ProgressInterval: time.Hour,
		ProgressHandler: func(ev ProgressEvent) error {
			if ev.Kind == KindProcessing {
				processing++
			}
			return nil
		},
	})
	require.NoError(t, err)

	// The limiter grants one initial token; nothing else fits in an hour.
	assert.Equal(t, 1, processing)
}
