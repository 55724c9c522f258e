// Package cga analyzes chess games with a UCI engine.
//
// It reads games from PGN, drives the engine through every position,
// and measures how far each played move fell from the engine's best
// line. Per-move results aggregate into per-game and per-player
// statistics.
//
// Example usage:
//
//	opt, err := cga.WithEnginePath("/usr/bin/stockfish", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	analyzer, err := cga.New(opt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer analyzer.Close()
//
//	analysis, err := analyzer.AnalyzeGame(ctx, game)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(analysis.SideStats(chess.White).DiffAvg)
package cga

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/cja000/cga/internal/engine"
	"github.com/cja000/cga/internal/evalcache"
	"github.com/cja000/cga/internal/fen"
	"github.com/cja000/cga/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoEngine indicates no engine backend was provided.
	ErrNoEngine = errors.New("cga: no engine provided")

	// ErrClosed indicates the analyzer has been closed.
	ErrClosed = errors.New("cga: analyzer closed")

	// ErrNoMoves indicates the game contains no moves to analyze.
	ErrNoMoves = errors.New("cga: game has no moves")
)

// Analyzer evaluates games move by move against a UCI engine.
// An Analyzer is safe for concurrent use by multiple goroutines only
// if its Searcher is; engines started with WithEnginePath are not.
type Analyzer struct {
	searcher engine.Searcher
	multiPV  int
	limits   engine.Limits
	cache    *evalcache.Cache
	stats    stats.Collector
	logger   *zap.Logger
	closed   atomic.Bool
}

// New creates a new Analyzer with the given options.
// An engine backend is required; everything else has defaults.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.searcher == nil {
		return nil, ErrNoEngine
	}

	a := &Analyzer{
		searcher: cfg.searcher,
		multiPV:  cfg.multiPV,
		limits:   cfg.limits,
		stats:    cfg.stats,
		logger:   cfg.logger,
	}

	if cfg.cacheSize > 0 {
		cache, err := evalcache.New(cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("cga: creating eval cache: %w", err)
		}
		a.cache = cache
	}

	a.logger.Debug("analyzer initialized",
		zap.Int("multiPV", a.multiPV),
		zap.String("limits", a.limits.Key()),
		zap.Int("cacheSize", cfg.cacheSize),
	)

	return a, nil
}

// AnalyzeGame runs the engine over every position of the game and
// returns the per-move analysis split by side. Positions where the
// engine reports no line are skipped with a warning, matching games
// that end in checkmate or adjudication.
func (a *Analyzer) AnalyzeGame(ctx context.Context, game *chess.Game) (*GameAnalysis, error) {
	if a.closed.Load() {
		return nil, ErrClosed
	}

	moves := game.Moves()
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	positions := game.Positions()

	analysis := newGameAnalysis(game)

	// The played move's score is the best score of the position it was
	// played from, carried from the previous iteration. The first move
	// starts from an even position.
	prev := CentipawnScore(0)

	for i, move := range moves {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos := positions[i]

		result, err := a.evaluate(pos.String())
		if err != nil {
			if errors.Is(err, engine.ErrNoResult) {
				a.logger.Warn("no engine line for position",
					zap.String("fen", pos.String()),
					zap.Int("ply", i+1),
				)
				continue
			}
			return nil, fmt.Errorf("cga: evaluating ply %d: %w", i+1, err)
		}

		san := chess.AlgebraicNotation{}.Encode(pos, move)
		best := result.Candidates[0]
		bestScore := candidateScore(best)

		ma := MoveAnalysis{
			Ply:       i + 1,
			San:       san,
			Score:     prev,
			BestMove:  a.candidateSan(pos, best),
			BestScore: bestScore,
			Diff:      Diff(prev, bestScore),
			Rank:      a.rankOf(pos, san, result.Candidates),
		}
		analysis.add(pos.Turn(), ma)

		prev = bestScore
	}

	a.stats.IncCounter(stats.MetricGames, 1)
	return analysis, nil
}

// EvaluatePosition runs the engine on a single FEN position and
// returns the ranked candidate lines.
func (a *Analyzer) EvaluatePosition(ctx context.Context, position string) (*Evaluation, error) {
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := a.evaluate(position)
	if err != nil {
		return nil, fmt.Errorf("cga: evaluating position: %w", err)
	}
	return newEvaluation(position, result), nil
}

// evaluate searches a position, going through the LRU cache when one
// is configured.
func (a *Analyzer) evaluate(position string) (*engine.Result, error) {
	a.stats.IncCounter(stats.MetricPositions, 1)

	var key string
	if a.cache != nil {
		normalized, err := fen.Normalize(position)
		if err != nil {
			return nil, err
		}
		key = evalcache.Key(normalized, a.limits, a.multiPV)
		if result, ok := a.cache.Get(key); ok {
			a.stats.IncCounter(stats.MetricCacheHits, 1)
			return result, nil
		}
		a.stats.IncCounter(stats.MetricCacheMisses, 1)
	}

	start := time.Now()
	result, err := a.searcher.Search(position, a.limits)
	a.stats.ObserveHistogram(stats.MetricSearchSeconds, time.Since(start).Seconds())
	a.stats.IncCounter(stats.MetricSearches, 1)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		a.cache.Add(key, result)
	}
	return result, nil
}

// candidateSan converts a candidate's UCI move to SAN. Moves the board
// cannot decode come back in UCI form rather than failing the game.
func (a *Analyzer) candidateSan(pos *chess.Position, c engine.Candidate) string {
	move, err := chess.UCINotation{}.Decode(pos, c.Move)
	if err != nil {
		a.logger.Warn("undecodable engine move",
			zap.String("move", c.Move),
			zap.String("fen", pos.String()),
		)
		return c.Move
	}
	return chess.AlgebraicNotation{}.Encode(pos, move)
}

// rankOf returns the 1-based rank of the played move among the
// engine's candidates, or 0 when the engine did not consider it.
func (a *Analyzer) rankOf(pos *chess.Position, san string, candidates []engine.Candidate) int {
	for _, c := range candidates {
		if a.candidateSan(pos, c) == san {
			return c.Rank
		}
	}
	return 0
}

// Close shuts down the engine backend. After Close, the analyzer
// should not be used.
func (a *Analyzer) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	a.logger.Debug("analyzer closed")
	return a.searcher.Close()
}

// candidateScore converts a candidate's raw engine score.
func candidateScore(c engine.Candidate) Score {
	if c.Mate != nil {
		return MateScore(*c.Mate)
	}
	if c.Centipawns != nil {
		return CentipawnScore(*c.Centipawns)
	}
	return CentipawnScore(0)
}
