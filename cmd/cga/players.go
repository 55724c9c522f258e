package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cja000/cga/internal/pgnfile"
)

var playersCmd = &cobra.Command{
	Use:   "players [PGN]",
	Short: "List the distinct players of a PGN file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func init() {
	rootCmd.AddCommand(playersCmd)
}

func runPlayers(cmd *cobra.Command, args []string) error {
	games, err := readGames(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	for _, name := range pgnfile.Players(games) {
		fmt.Println(name)
	}
	return nil
}
