package report

import (
	"math"
	"strings"
	"testing"
)

func sampleRows() []MoveRow {
	return []MoveRow{
		{
			San: "e4",
			Evals: []DepthEval{
				{Depth: 10, PlayedPawns: 0.30, BestMove: "e4", BestPawns: 0.30},
				{Depth: 14, PlayedPawns: 0.25, BestMove: "d4", BestPawns: 0.35},
			},
		},
		{
			San: "Nf3",
			Evals: []DepthEval{
				{Depth: 10, PlayedPawns: 0.10, BestMove: "Nc3", BestPawns: 0.20},
				{Depth: 14, PlayedPawns: 0.05, BestMove: "Nc3", BestPawns: 0.25},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, []int{10, 14}, sampleRows()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	wantHeader := "Move;ply;cp;best_move;best_cp;ply;cp;best_move;best_cp"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	wantRow := "e4;10;0.30;e4;0.30;14;0.25;d4;0.35"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestAverageDiffs(t *testing.T) {
	depths := []int{10, 14}
	avgs := AverageDiffs(sampleRows(), depths)

	// Depth 10: (0.00 + 0.10) / 2. Depth 14: (0.10 + 0.20) / 2.
	want := []float64{0.05, 0.15}
	for i := range want {
		if math.Abs(avgs[i]-want[i]) > 1e-9 {
			t.Errorf("avgs[%d] = %v, want %v", i, avgs[i], want[i])
		}
	}
}

func TestAverageDiffs_MissingEvals(t *testing.T) {
	rows := []MoveRow{
		{San: "e4", Evals: []DepthEval{{Depth: 10, PlayedPawns: 0.1, BestPawns: 0.3}}},
		{San: "d4"},
	}
	avgs := AverageDiffs(rows, []int{10})
	if math.Abs(avgs[0]-0.2) > 1e-9 {
		t.Errorf("avgs[0] = %v, want 0.2", avgs[0])
	}
}

func TestWriteAverages(t *testing.T) {
	var buf strings.Builder
	if err := WriteAverages(&buf, []int{10}, []float64{0.05}); err != nil {
		t.Fatalf("WriteAverages() error = %v", err)
	}
	want := "Average for 10 plys: +0.05\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
