// asciiflap plays Flappy Bird in the terminal. Games draw into a pixel
// canvas which is sampled block by block into characters.
//
// Usage:
//
//	asciiflap list              - List available games
//	asciiflap play [game]       - Play a game (default: flappy)
//	asciiflap menu              - Pick games interactively
//	asciiflap serve             - Start SSH server for remote play
//	asciiflap scores <game>     - Show high scores for a game
//	asciiflap snapshot [game]   - Render frames headless to text or PNG
//
// Render flags (--block, --color, --invert, --boost, --ramp) override
// render.yaml for every command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/asciiflap/internal/games/flappy"
	_ "github.com/vovakirdan/asciiflap/internal/games/shapes"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagLogLevel     string
	flagConfig       string
	flagRenderConfig string
	flagDifficulty   string

	// Render overrides
	flagBlock  int
	flagColor  bool
	flagInvert bool
	flagBoost  float64
	flagRamp   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asciiflap",
	Short: "Flappy Bird rendered as ASCII art in your terminal",
	Long: `asciiflap draws its games into a pixel canvas and turns every
block of pixels into one character, picked by brightness from a ramp.

Examples:
  asciiflap play
  asciiflap play --block 4 --color=false
  asciiflap play --difficulty hard --seed 42
  asciiflap snapshot --ticks 90 --png frame.png
  asciiflap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = canvas tick_rate from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.asciiflap/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom flappy.yaml")
	pf.StringVar(&flagRenderConfig, "render-config", "", "Path to custom render.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	pf.IntVar(&flagBlock, "block", 0, "Block size in pixels per character")
	pf.BoolVar(&flagColor, "color", true, "Color each character with its block's average color")
	pf.BoolVar(&flagInvert, "invert", false, "Invert character colors")
	pf.Float64Var(&flagBoost, "boost", 1, "Brightness boost applied before picking characters")
	pf.StringVar(&flagRamp, "ramp", "", "Character ramp from darkest to brightest")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}
