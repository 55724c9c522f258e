package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/notnil/chess"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cja000/cga/internal/engine"
	"github.com/cja000/cga/internal/pgnfile"
	"github.com/cja000/cga/internal/report"
)

// mateValue stands in for the centipawn value of a forced mate in the
// CSV output, where every column is numeric.
const mateValue = 100.0

var csvCmd = &cobra.Command{
	Use:   "csv [PGN]",
	Short: "Write a per-move CSV of a player's games at one or more depths",
	Long: `Evaluate every move of the given player at each requested depth and
write one semicolon-separated row per move: the played move, and for
each depth the played move's score, the engine's best move, and the
best move's score, all in pawns.

After the rows, one average best-versus-played differential is
printed per depth.

Examples:
  cga csv games.pgn --player carlsen --ply 10
  cga csv games.pgn --player carlsen --ply 10 --ply 14 -o result.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCsv,
}

var (
	csvPlayer string
	csvDepths []int
	csvOutput string
)

func init() {
	csvCmd.Flags().StringVarP(&csvPlayer, "player", "p", "", "player name pattern (required)")
	csvCmd.Flags().IntSliceVar(&csvDepths, "ply", []int{engine.DefaultDepth}, "analysis depth, repeatable")
	csvCmd.Flags().StringVarP(&csvOutput, "output", "o", "", "output file, default stdout")
	csvCmd.MarkFlagRequired("player")
	rootCmd.AddCommand(csvCmd)
}

func runCsv(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()

	games, err := readGames(ctx, args[0])
	if err != nil {
		return err
	}

	name, playerGames, err := pgnfile.FindPlayer(games, csvPlayer)
	if err != nil {
		return err
	}
	log.Info("player found", zap.String("player", name), zap.Int("games", len(playerGames)))

	eng, err := engine.New(enginePath, engine.Options{MultiPV: 1})
	if err != nil {
		return err
	}
	defer eng.Close()

	var rows []report.MoveRow
	for i, game := range playerGames {
		log.Info("analyzing game", zap.Int("game", i+1), zap.Int("total", len(playerGames)))
		gameRows, err := playerMoveRows(eng, game, name)
		if err != nil {
			return fmt.Errorf("analyzing game %d: %w", i+1, err)
		}
		rows = append(rows, gameRows...)
	}

	var out io.Writer = os.Stdout
	if csvOutput != "" {
		f, err := os.Create(csvOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", csvOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err := report.WriteCSV(out, csvDepths, rows); err != nil {
		return err
	}
	return report.WriteAverages(os.Stdout, csvDepths, report.AverageDiffs(rows, csvDepths))
}

// playerMoveRows evaluates the named player's moves of one game at
// every requested depth.
func playerMoveRows(eng engine.Searcher, game *chess.Game, name string) ([]report.MoveRow, error) {
	var color chess.Color
	switch name {
	case pgnfile.Tag(game, "White"):
		color = chess.White
	case pgnfile.Tag(game, "Black"):
		color = chess.Black
	default:
		return nil, nil
	}

	moves := game.Moves()
	positions := game.Positions()

	var rows []report.MoveRow
	for i, move := range moves {
		pos := positions[i]
		if pos.Turn() != color {
			continue
		}

		row := report.MoveRow{San: chess.AlgebraicNotation{}.Encode(pos, move)}
		for _, depth := range csvDepths {
			eval, err := moveEval(eng, pos, positions[i+1], move, depth)
			if err != nil {
				return nil, fmt.Errorf("ply %d: %w", i+1, err)
			}
			row.Evals = append(row.Evals, eval)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// moveEval scores one played move at one depth. The engine's best move
// comes from searching the position the move was played from; the
// played move's own score comes from searching the position after it
// and flipping the sign back to the mover's point of view.
func moveEval(eng engine.Searcher, before, after *chess.Position, move *chess.Move, depth int) (report.DepthEval, error) {
	limits := engine.Limits{Depth: depth}

	best, err := eng.Search(before.String(), limits)
	if err != nil {
		return report.DepthEval{}, err
	}
	bestMove := best.Candidates[0].Move
	if m, err := (chess.UCINotation{}).Decode(before, bestMove); err == nil {
		bestMove = (chess.AlgebraicNotation{}).Encode(before, m)
	}

	eval := report.DepthEval{
		Depth:     depth,
		BestMove:  bestMove,
		BestPawns: candidatePawns(best.Candidates[0], 1),
	}

	played, err := eng.Search(after.String(), limits)
	switch {
	case errors.Is(err, engine.ErrNoResult):
		// No reply means the played move ended the game.
		eval.PlayedPawns = mateValue
	case err != nil:
		return report.DepthEval{}, err
	default:
		eval.PlayedPawns = candidatePawns(played.Candidates[0], -1)
	}
	return eval, nil
}

// candidatePawns converts a candidate score to pawns from the point of
// view given by sign. Mates collapse to a fixed sentinel value.
func candidatePawns(c engine.Candidate, sign float64) float64 {
	if c.Mate != nil {
		return mateValue
	}
	if c.Centipawns == nil {
		return 0
	}
	return sign * float64(*c.Centipawns) / 100
}
