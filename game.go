package cga

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// maxRank is the deepest MultiPV rank the statistics track separately.
const maxRank = 3

// MoveAnalysis is the engine's verdict on one played move.
type MoveAnalysis struct {
	// Ply is the 1-based half-move number in the game.
	Ply int

	// San is the played move in standard algebraic notation.
	San string

	// Score is the evaluation the move was played from, taken as the
	// best score of the preceding position.
	Score Score

	// BestMove is the engine's preferred move in SAN.
	BestMove string

	// BestScore is the evaluation of the engine's preferred line.
	BestScore Score

	// Diff combines Score and BestScore into the deviation from best
	// play. White scores are positive and black negative, so the
	// components add.
	Diff Score

	// Rank is the 1-based position of the played move among the
	// engine's candidate lines, or 0 when the engine did not list it.
	Rank int
}

// SideStats aggregates one side's moves of a single game.
type SideStats struct {
	// Moves is the number of analyzed plies for the side.
	Moves int

	// CentipawnAvg is the sum of the side's non-mate best scores in
	// pawns divided by the number of analyzed plies.
	CentipawnAvg float64

	// DiffAvg is the mean deviation from the engine's best move in
	// pawns.
	DiffAvg float64

	// RankCounts maps candidate rank to how many played moves hit it.
	// Unranked moves are not counted.
	RankCounts map[int]int
}

// GameAnalysis holds the analyzed moves of one game, split by side.
type GameAnalysis struct {
	// WhitePlayer and BlackPlayer are the names from the game tags.
	WhitePlayer string
	BlackPlayer string

	// Result is the game result tag, e.g. "1-0".
	Result string

	white []MoveAnalysis
	black []MoveAnalysis
}

func newGameAnalysis(game *chess.Game) *GameAnalysis {
	return &GameAnalysis{
		WhitePlayer: tagValue(game, "White"),
		BlackPlayer: tagValue(game, "Black"),
		Result:      tagValue(game, "Result"),
	}
}

func tagValue(game *chess.Game, name string) string {
	tp := game.GetTagPair(name)
	if tp == nil {
		return ""
	}
	return tp.Value
}

func (g *GameAnalysis) add(turn chess.Color, ma MoveAnalysis) {
	if turn == chess.White {
		g.white = append(g.white, ma)
	} else {
		g.black = append(g.black, ma)
	}
}

// Moves returns a side's analyzed moves in game order.
func (g *GameAnalysis) Moves(color chess.Color) []MoveAnalysis {
	if color == chess.White {
		return g.white
	}
	return g.black
}

// PlayerColor reports which side the named player played, if either.
func (g *GameAnalysis) PlayerColor(name string) (chess.Color, bool) {
	switch name {
	case g.WhitePlayer:
		return chess.White, true
	case g.BlackPlayer:
		return chess.Black, true
	}
	return chess.NoColor, false
}

// SideStats computes the aggregate statistics for one side.
func (g *GameAnalysis) SideStats(color chess.Color) SideStats {
	moves := g.Moves(color)
	stats := SideStats{
		Moves:      len(moves),
		RankCounts: make(map[int]int),
	}
	if len(moves) == 0 {
		return stats
	}

	var diffSum, cpSum float64
	for _, m := range moves {
		diffSum += m.Diff.Pawns()
		if !m.BestScore.IsMate() {
			cpSum += m.BestScore.Pawns()
		}
		if m.Rank != 0 {
			stats.RankCounts[m.Rank]++
		}
	}

	// Mate scores contribute no centipawns but still count as plies,
	// so mating phases pull the average toward zero.
	total := float64(len(moves))
	stats.DiffAvg = diffSum / total
	stats.CentipawnAvg = cpSum / total
	return stats
}

// Summary renders both sides' statistics as a short text block.
func (g *GameAnalysis) Summary() string {
	var b strings.Builder
	for _, side := range []struct {
		label string
		name  string
		color chess.Color
	}{
		{"White", g.WhitePlayer, chess.White},
		{"Black", g.BlackPlayer, chess.Black},
	} {
		stats := g.SideStats(side.color)
		fmt.Fprintf(&b, "%s(%s): avg cp %+5.2f avg diff %+5.2f\n",
			side.label, side.name, stats.CentipawnAvg, stats.DiffAvg)

		topSum := 0
		for rank := 1; rank <= maxRank; rank++ {
			count := stats.RankCounts[rank]
			topSum += count
			fmt.Fprintf(&b, "  %s: %3d (%5.2f%%)\n",
				rankLabel(rank), count, percent(count, stats.Moves))
		}
		fmt.Fprintf(&b, "  Top %d: %3d (%5.2f%%)\n",
			maxRank, topSum, percent(topSum, stats.Moves))
	}
	return b.String()
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", rank)
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
