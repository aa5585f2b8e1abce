package engine

import "github.com/hupe1980/randhunt/symbol"

// Source yields one generated symbol string per call. A Source belongs to
// exactly one worker and is never shared.
type Source interface {
	Next() (symbol.Symbols, error)
}

// SourceFactory builds the private Source for one worker. Implementations
// must hand out sources with independent randomness; seeding two workers
// with the same state defeats the search.
type SourceFactory func(worker int) (Source, error)

// Matcher decides whether a generated string is a hit. Implementations
// must be safe for concurrent use; the same Matcher is shared by all
// workers.
type Matcher interface {
	Match(s symbol.Symbols) (bool, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(symbol.Symbols) (bool, error)

// Match implements Matcher.
func (f MatcherFunc) Match(s symbol.Symbols) (bool, error) { return f(s) }
