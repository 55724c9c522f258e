// Package logger emits analyzer metrics as zap debug lines, for
// development runs where a metrics backend is overkill.
package logger

import (
	"go.uber.org/zap"

	"github.com/cja000/cga/internal/stats"
)

// Collector writes every metric update to a zap logger.
type Collector struct {
	log *zap.Logger
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New returns a collector writing to log.
// A nil log discards everything.
func New(log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{log: log}
}

// IncCounter logs a counter increment, e.g. a game analyzed or an
// engine search issued.
func (c *Collector) IncCounter(name string, delta int64) {
	c.log.Debug("metric counter",
		zap.String("name", name),
		zap.Int64("by", delta),
	)
}

// SetGauge logs a gauge update.
func (c *Collector) SetGauge(name string, value int64) {
	c.log.Debug("metric gauge",
		zap.String("name", name),
		zap.Int64("to", value),
	)
}

// ObserveHistogram logs a single observation, e.g. one search duration.
func (c *Collector) ObserveHistogram(name string, value float64) {
	c.log.Debug("metric observation",
		zap.String("name", name),
		zap.Float64("value", value),
	)
}
