// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the analyzer.
const (
	// Analysis metrics.
	MetricGames     = "cga_games_analyzed_total"
	MetricPositions = "cga_positions_evaluated_total"
	MetricSearches  = "cga_engine_searches_total"

	// Engine search duration in seconds.
	MetricSearchSeconds = "cga_engine_search_seconds"

	// Evaluation cache metrics.
	MetricCacheHits   = "cga_eval_cache_hits_total"
	MetricCacheMisses = "cga_eval_cache_misses_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
