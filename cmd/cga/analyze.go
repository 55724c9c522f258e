package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cja000/cga"
	"github.com/cja000/cga/internal/engine"
	"github.com/cja000/cga/internal/evalcache"
	"github.com/cja000/cga/internal/pgnfile"
	"github.com/cja000/cga/internal/stats/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [PGN]",
	Short: "Report a player's accuracy across the games of a PGN file",
	Long: `Analyze every game of the given player with a UCI engine and print
the aggregated accuracy report: centipawn and deviation averages plus
how often the played move matched the engine's top choices.

The player flag is a case-insensitive pattern matched against the
White and Black tags. It must resolve to exactly one name; with
several matches the command lists them and exits with status 3.

Examples:
  cga analyze games.pgn --player carlsen
  cga analyze https://example.com/games.pgn.zst --player "naka" --movetime 500ms`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzePlayer   string
	analyzeMultiPV  int
	analyzeMoveTime time.Duration
	analyzeDepth    int
	analyzeCache    int
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzePlayer, "player", "p", "", "player name pattern (required)")
	analyzeCmd.Flags().IntVar(&analyzeMultiPV, "multipv", 3, "candidate lines per position")
	analyzeCmd.Flags().DurationVar(&analyzeMoveTime, "movetime", time.Second, "search time per position")
	analyzeCmd.Flags().IntVar(&analyzeDepth, "depth", 0, "search depth per position, overrides --movetime")
	analyzeCmd.Flags().IntVar(&analyzeCache, "cache-size", evalcache.DefaultSize, "evaluations to cache in memory")
	analyzeCmd.MarkFlagRequired("player")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
	log.Info("read games", zap.String("source", args[0]), zap.Int("games", len(games)))

	name, playerGames, err := pgnfile.FindPlayer(games, analyzePlayer)
	if err != nil {
		return err
	}
	log.Info("player found", zap.String("player", name), zap.Int("games", len(playerGames)))

	limits := engine.Limits{MoveTime: analyzeMoveTime}
	if analyzeDepth > 0 {
		limits = engine.Limits{Depth: analyzeDepth}
	}

	engineOpt, err := cga.WithEnginePath(enginePath, analyzeMultiPV)
	if err != nil {
		return err
	}
	analyzer, err := cga.New(
		engineOpt,
		cga.WithLimits(limits),
		cga.WithCacheSize(analyzeCache),
		cga.WithStats(logger.New(log.Named("stats"))),
		cga.WithLogger(log.Named("cga")),
	)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	playerStats := cga.NewPlayerStats(name)
	start := time.Now()
	for i, game := range playerGames {
		log.Info("analyzing game",
			zap.Int("game", i+1),
			zap.Int("total", len(playerGames)),
		)
		analysis, err := analyzer.AnalyzeGame(ctx, game)
		if err != nil {
			return fmt.Errorf("analyzing game %d: %w", i+1, err)
		}
		playerStats.AddGame(analysis)
		if verbose {
			fmt.Print(analysis.Summary())
		}
	}
	log.Info("analysis done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("games", playerStats.Games()),
	)

	fmt.Print(playerStats.Report())
	return nil
}
