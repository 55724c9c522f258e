package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cja000/cga/internal/stats"
)

func TestCollector_LogsMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricGames, 1)
	c.SetGauge("example_gauge", 7)
	c.ObserveHistogram(stats.MetricSearchSeconds, 0.25)

	if logs.Len() != 3 {
		t.Fatalf("logged %d entries, want 3", logs.Len())
	}

	counter := logs.All()[0]
	if counter.Message != "metric counter" {
		t.Errorf("message = %q, want %q", counter.Message, "metric counter")
	}
	fields := counter.ContextMap()
	if fields["name"] != stats.MetricGames {
		t.Errorf("name field = %v, want %q", fields["name"], stats.MetricGames)
	}
	if fields["by"] != int64(1) {
		t.Errorf("by field = %v, want 1", fields["by"])
	}

	observation := logs.All()[2]
	if observation.ContextMap()["value"] != 0.25 {
		t.Errorf("value field = %v, want 0.25", observation.ContextMap()["value"])
	}
}

func TestNew_NilLogger(t *testing.T) {
	c := New(nil)
	// Must not panic.
	c.IncCounter(stats.MetricSearches, 1)
}
