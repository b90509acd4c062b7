package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asciiflap/internal/platform/tui"
	"github.com/vovakirdan/asciiflap/internal/storage"
)

var flagAutoBlock bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (flappy when omitted).

Controls:
  Space/Up/W - Flap
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Leave (when paused or after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  asciiflap play
  asciiflap play --auto-block
  asciiflap play --block 4 --ramp " .:-=+*#%@"
  asciiflap play flappy --difficulty hard --seed 7
  asciiflap play shapes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutoBlock, "auto-block", false, "Pick the smallest block size that fits the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "flappy"
	if len(args) == 1 {
		gameID = args[0]
	}
	requireGame(gameID)

	s := mustSetup(cmd)
	if flagAutoBlock {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read terminal size: %v\n", err)
			os.Exit(1)
		}
		block := tui.FitBlockSize(s.game.Width, s.game.Height, cols, rows)
		if s, err = s.withBlock(block); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s.logger.Info("block size fitted to terminal", "block", block, "cols", cols, "rows", rows)
	}

	game, err := s.newGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, s.game); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
