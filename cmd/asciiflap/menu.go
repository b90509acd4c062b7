package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciiflap/internal/platform/tui"
	"github.com/vovakirdan/asciiflap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game from an interactive menu",
	Long: `Opens the game menu. Pick a game with Enter, browse high scores
with Tab and leave with Q.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	s := mustSetup(cmd)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunApp(store, s.game, s.newGame); err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
