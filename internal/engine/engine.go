// Package engine drives an external UCI chess engine for one-off position
// analysis. The subprocess protocol itself is handled by freeeve/uci; this
// package only configures the engine and shapes its multi-PV output.
package engine

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"time"

	"github.com/freeeve/uci"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrEngineNotFound indicates the engine binary does not exist.
	ErrEngineNotFound = errors.New("engine: executable not found")

	// ErrNoResult indicates the engine returned no principal variation.
	ErrNoResult = errors.New("engine: search produced no result")
)

// DefaultDepth is used when a search has neither a depth nor a time budget.
const DefaultDepth = 12

// Limits bounds a single search.
// MoveTime takes precedence over Depth when both are set.
type Limits struct {
	Depth    int
	MoveTime time.Duration
}

// Key returns a stable string form of the limits, used in cache keys.
func (l Limits) Key() string {
	if l.MoveTime > 0 {
		return "t" + strconv.FormatInt(int64(l.MoveTime/time.Millisecond), 10)
	}
	d := l.Depth
	if d <= 0 {
		d = DefaultDepth
	}
	return "d" + strconv.Itoa(d)
}

// Candidate is one ranked engine suggestion for a position.
type Candidate struct {
	// Rank is the 1-based multi-PV rank of this line.
	Rank int

	// Move is the first move of the line in UCI notation.
	Move string

	// Line is the full principal variation in UCI notation.
	Line []string

	// Centipawns is the score of the line, nil for forced mates.
	Centipawns *int

	// Mate is the mate distance, nil when there is no forced mate.
	Mate *int

	// Depth is the search depth this line was reported at.
	Depth int
}

// Result holds the ranked candidates of one search.
type Result struct {
	// BestMove is the engine's chosen move in UCI notation.
	BestMove string

	// Candidates are the multi-PV lines ordered by rank.
	Candidates []Candidate
}

// Searcher is the engine surface the analyzer consumes.
type Searcher interface {
	// Search analyzes the position given in FEN within the limits.
	Search(fen string, limits Limits) (*Result, error)

	// Close terminates the engine subprocess.
	Close() error
}

// Options configure the engine subprocess.
type Options struct {
	// MultiPV is the number of candidate lines to request. Defaults to 1.
	MultiPV int

	// Hash is the transposition table size in MB. Defaults to 128.
	Hash int

	// Threads is the number of engine threads. Defaults to 1.
	Threads int
}

// Engine wraps a running UCI engine subprocess.
type Engine struct {
	eng     *uci.Engine
	path    string
	multiPV int
}

// Compile-time check that Engine implements Searcher.
var _ Searcher = (*Engine)(nil)

// New starts the engine at path and applies the options.
// Returns ErrEngineNotFound if the binary cannot be located.
func New(path string, opts Options) (*Engine, error) {
	if _, err := exec.LookPath(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, path)
	}

	if opts.MultiPV <= 0 {
		opts.MultiPV = 1
	}
	if opts.Hash <= 0 {
		opts.Hash = 128
	}
	if opts.Threads <= 0 {
		opts.Threads = 1
	}

	eng, err := uci.NewEngine(path)
	if err != nil {
		return nil, fmt.Errorf("starting engine: %w", err)
	}

	err = eng.SetOptions(uci.Options{
		MultiPV: opts.MultiPV,
		Hash:    opts.Hash,
		Threads: opts.Threads,
		Ponder:  false,
		OwnBook: false,
	})
	if err != nil {
		eng.Close()
		return nil, fmt.Errorf("setting engine options: %w", err)
	}

	return &Engine{
		eng:     eng,
		path:    path,
		multiPV: opts.MultiPV,
	}, nil
}

// Path returns the engine binary path.
func (e *Engine) Path() string {
	return e.path
}

// MultiPV returns the configured number of candidate lines.
func (e *Engine) MultiPV() int {
	return e.multiPV
}

// Search analyzes a FEN position and returns the ranked candidates.
func (e *Engine) Search(fen string, limits Limits) (*Result, error) {
	if err := e.eng.SetFEN(fen); err != nil {
		return nil, fmt.Errorf("setting position: %w", err)
	}

	var (
		res *uci.Results
		err error
	)
	if limits.MoveTime > 0 {
		res, err = e.eng.Go(0, "", int64(limits.MoveTime/time.Millisecond), uci.HighestDepthOnly)
	} else {
		depth := limits.Depth
		if depth <= 0 {
			depth = DefaultDepth
		}
		res, err = e.eng.GoDepth(depth, uci.HighestDepthOnly)
	}
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	return shapeResult(res)
}

// Close terminates the engine subprocess.
func (e *Engine) Close() error {
	e.eng.Close()
	return nil
}

// shapeResult converts the raw uci results into ranked candidates.
func shapeResult(res *uci.Results) (*Result, error) {
	candidates := make([]Candidate, 0, len(res.Results))
	for _, sr := range res.Results {
		if len(sr.BestMoves) == 0 {
			continue
		}
		c := Candidate{
			Rank:  sr.MultiPV,
			Move:  sr.BestMoves[0],
			Line:  append([]string(nil), sr.BestMoves...),
			Depth: sr.Depth,
		}
		// Engines without multi-PV enabled omit the rank.
		if c.Rank == 0 {
			c.Rank = 1
		}
		score := sr.Score
		if sr.Mate {
			c.Mate = &score
		} else {
			c.Centipawns = &score
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return nil, ErrNoResult
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rank < candidates[j].Rank
	})

	best := res.BestMove
	if best == "" {
		best = candidates[0].Move
	}

	return &Result{
		BestMove:   best,
		Candidates: candidates,
	}, nil
}
