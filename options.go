package cga

import (
	"time"

	"go.uber.org/zap"

	"github.com/cja000/cga/internal/engine"
	"github.com/cja000/cga/internal/stats"
)

// Option configures an Analyzer.
type Option interface {
	apply(*options)
}

// options holds the analyzer configuration.
type options struct {
	searcher  engine.Searcher
	multiPV   int
	limits    engine.Limits
	cacheSize int
	stats     stats.Collector
	logger    *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		multiPV:   3,
		limits:    engine.Limits{MoveTime: time.Second},
		cacheSize: 0, // no cache
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithSearcher sets the engine backend to use.
func WithSearcher(s engine.Searcher) Option {
	return optionFunc(func(o *options) {
		o.searcher = s
	})
}

// WithMultiPV sets how many principal variations the engine reports
// per position. Default is 3, matching the ranks the reports track.
func WithMultiPV(n int) Option {
	return optionFunc(func(o *options) {
		o.multiPV = n
	})
}

// WithLimits sets the search limits applied to every position.
// Default is one second per move.
func WithLimits(l engine.Limits) Option {
	return optionFunc(func(o *options) {
		o.limits = l
	})
}

// WithCacheSize enables an LRU evaluation cache holding up to n
// positions. Default is no cache.
func WithCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithEnginePath starts a UCI engine at path and uses it as the
// backend. This is the recommended way to create an analyzer against a
// local engine binary.
func WithEnginePath(path string, multiPV int) (Option, error) {
	eng, err := engine.New(path, engine.Options{MultiPV: multiPV})
	if err != nil {
		return nil, err
	}
	return optionFunc(func(o *options) {
		o.searcher = eng
		o.multiPV = multiPV
	}), nil
}
