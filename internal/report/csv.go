// Package report renders analysis results as CSV and text.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// DepthEval is one depth's evaluation of a single move: the score of
// the move actually played and the engine's preferred alternative.
type DepthEval struct {
	Depth       int
	PlayedPawns float64
	BestMove    string
	BestPawns   float64
}

// MoveRow is one move of a game with its evaluation at every requested
// depth, in the same order as the depths slice passed to WriteCSV.
type MoveRow struct {
	San   string
	Evals []DepthEval
}

// WriteCSV writes rows as semicolon-separated values. The header names
// the move column once and then repeats the per-depth columns for each
// requested depth.
func WriteCSV(w io.Writer, depths []int, rows []MoveRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := []string{"Move"}
	for range depths {
		header = append(header, "ply", "cp", "best_move", "best_cp")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.San}
		for _, eval := range row.Evals {
			record = append(record,
				strconv.Itoa(eval.Depth),
				formatPawns(eval.PlayedPawns),
				eval.BestMove,
				formatPawns(eval.BestPawns),
			)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: writing row for %s: %w", row.San, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// AverageDiffs returns, for each depth index, the mean difference
// between the best and the played score across all rows. Rows missing
// an evaluation for a depth are skipped for that depth.
func AverageDiffs(rows []MoveRow, depths []int) []float64 {
	avgs := make([]float64, len(depths))
	for i := range depths {
		var diffs []float64
		for _, row := range rows {
			if i < len(row.Evals) {
				diffs = append(diffs, row.Evals[i].BestPawns-row.Evals[i].PlayedPawns)
			}
		}
		if len(diffs) > 0 {
			avgs[i] = stat.Mean(diffs, nil)
		}
	}
	return avgs
}

// WriteAverages prints one per-depth average line after the CSV body.
func WriteAverages(w io.Writer, depths []int, avgs []float64) error {
	for i, depth := range depths {
		if _, err := fmt.Fprintf(w, "Average for %d plys: %+.2f\n", depth, avgs[i]); err != nil {
			return fmt.Errorf("report: writing averages: %w", err)
		}
	}
	return nil
}

func formatPawns(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
