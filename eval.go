package cga

import "github.com/cja000/cga/internal/engine"

// Candidate is one engine line for a position.
type Candidate struct {
	// Rank is the 1-based MultiPV rank of the line.
	Rank int

	// Move is the first move of the line in UCI notation.
	Move string

	// Line is the full principal variation in UCI notation.
	Line []string

	// Score is the engine's evaluation of the line from the side to
	// move's point of view.
	Score Score
}

// Evaluation is the engine's view of a single position.
type Evaluation struct {
	// FEN is the position that was evaluated.
	FEN string

	// BestMove is the engine's preferred move in UCI notation.
	BestMove string

	// Score is the evaluation of the best line.
	Score Score

	// Candidates holds all reported lines in rank order.
	Candidates []Candidate
}

func newEvaluation(position string, result *engine.Result) *Evaluation {
	eval := &Evaluation{
		FEN:      position,
		BestMove: result.BestMove,
	}
	for _, c := range result.Candidates {
		eval.Candidates = append(eval.Candidates, Candidate{
			Rank:  c.Rank,
			Move:  c.Move,
			Line:  c.Line,
			Score: candidateScore(c),
		})
	}
	if len(eval.Candidates) > 0 {
		eval.Score = eval.Candidates[0].Score
	}
	return eval
}
