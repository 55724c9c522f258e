package cga

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"gonum.org/v1/gonum/stat"
)

// PlayerStats accumulates analysis results for one player across
// games. Game-level averages are weighted equally regardless of game
// length; rank percentages are computed over the total ply count.
type PlayerStats struct {
	// Name is the player as it appears in the PGN tags.
	Name string

	games      int
	plies      int
	cpAvgs     []float64
	diffAvgs   []float64
	rankCounts map[int]int
}

// NewPlayerStats returns empty statistics for the named player.
func NewPlayerStats(name string) *PlayerStats {
	return &PlayerStats{
		Name:       name,
		rankCounts: make(map[int]int),
	}
}

// AddGame folds one analyzed game into the statistics. Games the
// player took no part in are ignored. A PlayerStats with an empty name
// is a catch-all and folds both sides of every game.
func (p *PlayerStats) AddGame(analysis *GameAnalysis) {
	var colors []chess.Color
	if p.Name == "" {
		colors = []chess.Color{chess.White, chess.Black}
	} else {
		color, ok := analysis.PlayerColor(p.Name)
		if !ok {
			return
		}
		colors = []chess.Color{color}
	}

	p.games++
	for _, color := range colors {
		side := analysis.SideStats(color)
		p.plies += side.Moves
		p.cpAvgs = append(p.cpAvgs, side.CentipawnAvg)
		p.diffAvgs = append(p.diffAvgs, side.DiffAvg)
		for rank, count := range side.RankCounts {
			p.rankCounts[rank] += count
		}
	}
}

// Games returns how many games have been folded in.
func (p *PlayerStats) Games() int { return p.games }

// Plies returns the total number of analyzed plies.
func (p *PlayerStats) Plies() int { return p.plies }

// CentipawnAvg is the mean of the per-game centipawn averages.
func (p *PlayerStats) CentipawnAvg() float64 {
	if len(p.cpAvgs) == 0 {
		return 0
	}
	return stat.Mean(p.cpAvgs, nil)
}

// DiffAvg is the mean of the per-game deviation averages.
func (p *PlayerStats) DiffAvg() float64 {
	if len(p.diffAvgs) == 0 {
		return 0
	}
	return stat.Mean(p.diffAvgs, nil)
}

// RankCount returns how often the player's move was the engine's
// rank-th choice.
func (p *PlayerStats) RankCount(rank int) int { return p.rankCounts[rank] }

// RankPercent returns RankCount as a percentage of all analyzed plies.
func (p *PlayerStats) RankPercent(rank int) float64 {
	return percent(p.rankCounts[rank], p.plies)
}

// TopPercent returns the share of plies where the played move was
// within the engine's top n choices.
func (p *PlayerStats) TopPercent(n int) float64 {
	sum := 0
	for rank := 1; rank <= n; rank++ {
		sum += p.rankCounts[rank]
	}
	return percent(sum, p.plies)
}

// Report renders the statistics as a text block.
func (p *PlayerStats) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Player: %s\n", p.Name)
	fmt.Fprintf(&b, "Number of games: %d\n", p.games)
	fmt.Fprintf(&b, "Number of plys: %d\n", p.plies)
	fmt.Fprintf(&b, "Averages:\n")
	fmt.Fprintf(&b, " cp:   %+5.2f\n", p.CentipawnAvg())
	fmt.Fprintf(&b, " diff: %+5.2f\n", p.DiffAvg())

	accumulative := 0.0
	for rank := 1; rank <= maxRank; rank++ {
		accumulative += p.RankPercent(rank)
		fmt.Fprintf(&b, " pos %d: %5.2f%% (%5.2f%%)\n",
			rank, p.RankPercent(rank), accumulative)
	}
	fmt.Fprintf(&b, " top %d: %5.2f%%\n", maxRank, p.TopPercent(maxRank))
	return b.String()
}
