package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciiflap/internal/registry"
	"github.com/vovakirdan/asciiflap/internal/storage"
)

var (
	flagLimit     int
	flagAllRuns   bool
	flagClearRuns bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best runs recorded for the specified game, with the
seed each run was played on so it can be replayed. Without a game, prints
a summary line for every game that has been played.

Examples:
  asciiflap scores
  asciiflap scores flappy
  asciiflap scores flappy --limit 25
  asciiflap scores flappy --all
  asciiflap scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete every recorded run of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagClearRuns {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
		os.Exit(1)
	}
	if len(args) == 1 {
		requireGame(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 0:
		err = printSummary(os.Stdout, store)
	case flagClearRuns:
		err = clearScores(os.Stdout, store, args[0])
	default:
		err = printScores(os.Stdout, store, args[0], flagLimit, flagAllRuns)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func gameTitle(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

// printScores lists the best runs of a game, or every run when all is set.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int, all bool) error {
	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", gameTitle(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'asciiflap play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-20s  %s\n", "Rank", "Score", "Ticks", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-20s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-7d  %-7d  %-20d  %s\n",
			i+1, entry.Score, entry.Ticks, entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil && stats.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d runs, average %.1f, %d ticks played\n", stats.Runs, stats.AvgScore, stats.TotalTicks)
	}
	return nil
}

// printSummary prints one line per played game, sorted by game ID.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-20s  %-5s  %-5s  %-7s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-20s  %-5s  %-5s  %-7s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, id := range slices.Sorted(maps.Keys(stats)) {
		st := stats[id]
		fmt.Fprintf(w, "  %-20s  %-5d  %-5d  %-7.1f  %s\n",
			gameTitle(id), st.Runs, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, gameID string) error {
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs of %s.\n", stats.Runs, gameTitle(gameID))
	return nil
}
