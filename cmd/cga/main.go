// Package main provides the cga CLI tool for analyzing chess games
// with a UCI engine.
package main

import (
	"errors"
	"os"

	"github.com/cja000/cga/internal/pgnfile"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ambiguous *pgnfile.AmbiguousPlayerError
		if errors.As(err, &ambiguous) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}
