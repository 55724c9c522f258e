package main

import (
	"context"
	"fmt"

	"github.com/notnil/chess"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cja000/cga/internal/pgnfile"
	"github.com/cja000/cga/internal/source"
)

var (
	// Global flags.
	enginePath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cga",
	Short: "Analyze chess games with a UCI engine",
	Long: `cga reads games from PGN and measures how far a player's moves
fell from a UCI engine's best lines.

PGN input can be a local file, an http(s) URL, or a gs:// or s3://
object, optionally compressed with zstd or gzip.

Examples:
  # Per-player accuracy report
  cga analyze games.pgn --player carlsen --engine /usr/bin/stockfish

  # Per-move CSV at two depths
  cga csv games.pgn.zst --player carlsen --ply 10 --ply 14 -e stockfish

  # List players in a file
  cga players games.pgn

  # Positions waiting on a chess.com player
  cga to-move username`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&enginePath, "engine", "e", "stockfish", "UCI engine binary")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger builds the CLI logger. Verbose mode switches to the
// development config at debug level.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

// readGames opens a PGN source by name and parses every game in it.
func readGames(ctx context.Context, name string) ([]*chess.Game, error) {
	r, err := source.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer r.Close()

	games, err := pgnfile.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return games, nil
}
