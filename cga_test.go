package cga

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/notnil/chess"

	"github.com/cja000/cga/internal/engine"
)

func intp(v int) *int { return &v }

// scriptedSearcher replays a fixed sequence of engine results.
type scriptedSearcher struct {
	results []*engine.Result
	calls   int
	closed  bool
}

func (s *scriptedSearcher) Search(fen string, limits engine.Limits) (*engine.Result, error) {
	if s.calls >= len(s.results) {
		return nil, engine.ErrNoResult
	}
	r := s.results[s.calls]
	s.calls++
	return r, nil
}

func (s *scriptedSearcher) Close() error {
	s.closed = true
	return nil
}

func openingResults() []*engine.Result {
	return []*engine.Result{
		{
			BestMove: "e2e4",
			Candidates: []engine.Candidate{
				{Rank: 1, Move: "e2e4", Centipawns: intp(30)},
				{Rank: 2, Move: "d2d4", Centipawns: intp(20)},
				{Rank: 3, Move: "g1f3", Centipawns: intp(10)},
			},
		},
		{
			BestMove: "c7c5",
			Candidates: []engine.Candidate{
				{Rank: 1, Move: "c7c5", Centipawns: intp(-25)},
				{Rank: 2, Move: "e7e5", Centipawns: intp(-30)},
			},
		},
	}
}

func testGame(t *testing.T, moves ...string) *chess.Game {
	t.Helper()
	game := chess.NewGame()
	game.AddTagPair("White", "Alice")
	game.AddTagPair("Black", "Bob")
	for _, move := range moves {
		if err := game.MoveStr(move); err != nil {
			t.Fatalf("MoveStr(%q) error = %v", move, err)
		}
	}
	return game
}

func TestNew_NoEngine(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNoEngine) {
		t.Errorf("New() error = %v, want ErrNoEngine", err)
	}
}

func TestAnalyzeGame(t *testing.T) {
	searcher := &scriptedSearcher{results: openingResults()}
	analyzer, err := New(WithSearcher(searcher))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	analysis, err := analyzer.AnalyzeGame(context.Background(), testGame(t, "e4", "e5"))
	if err != nil {
		t.Fatalf("AnalyzeGame() error = %v", err)
	}

	white := analysis.Moves(chess.White)
	if len(white) != 1 {
		t.Fatalf("got %d white moves, want 1", len(white))
	}
	if white[0].San != "e4" || white[0].BestMove != "e4" {
		t.Errorf("white move = %+v", white[0])
	}
	if white[0].Rank != 1 {
		t.Errorf("white rank = %d, want 1", white[0].Rank)
	}
	// First move starts from an even score, so the diff is the best
	// score itself.
	if got := white[0].Diff.Pawns(); math.Abs(got-0.30) > 1e-9 {
		t.Errorf("white diff = %v, want 0.30", got)
	}

	black := analysis.Moves(chess.Black)
	if len(black) != 1 {
		t.Fatalf("got %d black moves, want 1", len(black))
	}
	if black[0].Rank != 2 {
		t.Errorf("black rank = %d, want 2", black[0].Rank)
	}
	// Carried score +0.30 plus best score -0.25.
	if got := black[0].Diff.Pawns(); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("black diff = %v, want 0.05", got)
	}
	if got := black[0].Score.Pawns(); math.Abs(got-0.30) > 1e-9 {
		t.Errorf("black carried score = %v, want 0.30", got)
	}
}

func TestAnalyzeGame_UnlistedMoveRankZero(t *testing.T) {
	// None of the engine's candidates is the played move.
	searcher := &scriptedSearcher{results: []*engine.Result{
		{
			BestMove: "d2d4",
			Candidates: []engine.Candidate{
				{Rank: 1, Move: "d2d4", Centipawns: intp(25)},
				{Rank: 2, Move: "g1f3", Centipawns: intp(15)},
				{Rank: 3, Move: "c2c4", Centipawns: intp(10)},
			},
		},
	}}
	analyzer, err := New(WithSearcher(searcher))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	analysis, err := analyzer.AnalyzeGame(context.Background(), testGame(t, "e4"))
	if err != nil {
		t.Fatalf("AnalyzeGame() error = %v", err)
	}

	white := analysis.Moves(chess.White)
	if len(white) != 1 {
		t.Fatalf("got %d white moves, want 1", len(white))
	}
	if white[0].Rank != 0 {
		t.Errorf("rank = %d, want 0 for a move outside the candidate list", white[0].Rank)
	}
	if white[0].BestMove != "d4" {
		t.Errorf("BestMove = %q, want %q", white[0].BestMove, "d4")
	}
}

func TestAnalyzeGame_SkipsMissingLines(t *testing.T) {
	// Only the first position has an engine result.
	searcher := &scriptedSearcher{results: openingResults()[:1]}
	analyzer, err := New(WithSearcher(searcher))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	analysis, err := analyzer.AnalyzeGame(context.Background(), testGame(t, "e4", "e5"))
	if err != nil {
		t.Fatalf("AnalyzeGame() error = %v", err)
	}
	if len(analysis.Moves(chess.White)) != 1 || len(analysis.Moves(chess.Black)) != 0 {
		t.Errorf("moves = %d white, %d black, want 1 and 0",
			len(analysis.Moves(chess.White)), len(analysis.Moves(chess.Black)))
	}
}

func TestAnalyzeGame_NoMoves(t *testing.T) {
	analyzer, err := New(WithSearcher(&scriptedSearcher{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := analyzer.AnalyzeGame(context.Background(), chess.NewGame()); !errors.Is(err, ErrNoMoves) {
		t.Errorf("AnalyzeGame() error = %v, want ErrNoMoves", err)
	}
}

func TestAnalyzeGame_CanceledContext(t *testing.T) {
	analyzer, err := New(WithSearcher(&scriptedSearcher{results: openingResults()}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := analyzer.AnalyzeGame(ctx, testGame(t, "e4")); !errors.Is(err, context.Canceled) {
		t.Errorf("AnalyzeGame() error = %v, want context.Canceled", err)
	}
}

func TestEvaluatePosition(t *testing.T) {
	searcher := &scriptedSearcher{results: openingResults()}
	analyzer, err := New(WithSearcher(searcher))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	eval, err := analyzer.EvaluatePosition(context.Background(), chess.NewGame().Position().String())
	if err != nil {
		t.Fatalf("EvaluatePosition() error = %v", err)
	}
	if eval.BestMove != "e2e4" {
		t.Errorf("BestMove = %q, want %q", eval.BestMove, "e2e4")
	}
	if len(eval.Candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(eval.Candidates))
	}
	if got := eval.Score.Pawns(); math.Abs(got-0.30) > 1e-9 {
		t.Errorf("Score = %v, want 0.30", got)
	}
}

func TestEvaluatePosition_Cached(t *testing.T) {
	searcher := &scriptedSearcher{results: openingResults()}
	analyzer, err := New(WithSearcher(searcher), WithCacheSize(16))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	fen := chess.NewGame().Position().String()
	for i := 0; i < 3; i++ {
		if _, err := analyzer.EvaluatePosition(context.Background(), fen); err != nil {
			t.Fatalf("EvaluatePosition() error = %v", err)
		}
	}
	if searcher.calls != 1 {
		t.Errorf("engine searched %d times, want 1", searcher.calls)
	}
}

func TestClose(t *testing.T) {
	searcher := &scriptedSearcher{}
	analyzer, err := New(WithSearcher(searcher))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := analyzer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !searcher.closed {
		t.Error("Close() did not close the engine")
	}
	if err := analyzer.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
	if _, err := analyzer.AnalyzeGame(context.Background(), testGame(t, "e4")); !errors.Is(err, ErrClosed) {
		t.Errorf("AnalyzeGame() after Close error = %v, want ErrClosed", err)
	}
}
