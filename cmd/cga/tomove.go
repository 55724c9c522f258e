package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cja000/cga"
	"github.com/cja000/cga/internal/chesscom"
	"github.com/cja000/cga/internal/engine"
)

var toMoveCmd = &cobra.Command{
	Use:   "to-move [USER]",
	Short: "List chess.com positions waiting on the player's move",
	Long: `Fetch the given chess.com player's daily games where it is their
turn and print one FEN per game.

With --best the engine also suggests a move and a score for each
position.

Examples:
  cga to-move username
  cga to-move username --best -e stockfish`,
	Args: cobra.ExactArgs(1),
	RunE: runToMove,
}

var (
	toMoveBest  bool
	toMoveDepth int
)

func init() {
	toMoveCmd.Flags().BoolVar(&toMoveBest, "best", false, "suggest an engine move per position")
	toMoveCmd.Flags().IntVar(&toMoveDepth, "depth", engine.DefaultDepth, "search depth for --best")
	rootCmd.AddCommand(toMoveCmd)
}

func runToMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := chesscom.New(args[0])

	fens, err := client.FENsToMove(ctx)
	if err != nil {
		return err
	}

	var analyzer *cga.Analyzer
	if toMoveBest {
		engineOpt, err := cga.WithEnginePath(enginePath, 1)
		if err != nil {
			return err
		}
		analyzer, err = cga.New(
			engineOpt,
			cga.WithLimits(engine.Limits{Depth: toMoveDepth}),
		)
		if err != nil {
			return err
		}
		defer analyzer.Close()
	}

	for _, fen := range fens {
		if analyzer == nil {
			fmt.Println(fen)
			continue
		}
		eval, err := analyzer.EvaluatePosition(ctx, fen)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", fen, err)
		}
		fmt.Printf("%s\tbest %s (%s)\n", fen, eval.BestMove, eval.Score)
	}
	return nil
}
