// Package analyzerfx provides an fx module for an engine-backed analyzer.
package analyzerfx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/cja000/cga"
	"github.com/cja000/cga/internal/engine"
	"github.com/cja000/cga/internal/stats"
	"github.com/cja000/cga/internal/stats/logger"
)

// Config holds configuration for the analyzer.
type Config struct {
	// EnginePath is the UCI engine binary to run.
	EnginePath string

	// MultiPV is the number of candidate lines per position.
	// Default is 3.
	MultiPV int

	// MoveTime is the search time per position.
	// Default is one second.
	MoveTime time.Duration

	// CacheSize is the number of evaluations to cache in memory.
	// Default is 4096.
	CacheSize int
}

// Module provides an engine-backed analyzer.
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("analyzer",
	fx.Provide(
		newStatsCollector,
		newAnalyzer,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("cga.stats"))
}

// Params holds dependencies for creating the analyzer.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided analyzer.
type Result struct {
	fx.Out

	Analyzer *cga.Analyzer
}

func newAnalyzer(p Params) (Result, error) {
	multiPV := p.Config.MultiPV
	if multiPV <= 0 {
		multiPV = 3
	}
	moveTime := p.Config.MoveTime
	if moveTime <= 0 {
		moveTime = time.Second
	}
	cacheSize := p.Config.CacheSize
	if cacheSize <= 0 {
		cacheSize = 4096
	}

	engineOpt, err := cga.WithEnginePath(p.Config.EnginePath, multiPV)
	if err != nil {
		return Result{}, err
	}

	analyzer, err := cga.New(
		engineOpt,
		cga.WithLimits(engine.Limits{MoveTime: moveTime}),
		cga.WithCacheSize(cacheSize),
		cga.WithStats(p.Collector),
		cga.WithLogger(p.Logger.Named("cga")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return analyzer.Close()
		},
	})

	return Result{Analyzer: analyzer}, nil
}
