package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciiflap/internal/config"
	"github.com/vovakirdan/asciiflap/internal/games/flappy"
	"github.com/vovakirdan/asciiflap/internal/platform/tui"
	"github.com/vovakirdan/asciiflap/internal/registry"
)

// setup is everything a command needs, resolved from flags and YAML.
type setup struct {
	logger *log.Logger
	flappy config.FlappyConfig
	render config.RenderConfig
	game   tui.Config
}

// loadSetup loads both configs, applies the difficulty preset and the
// render flags the user actually set, and validates the result.
func loadSetup(cmd *cobra.Command) (setup, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return setup{}, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "asciiflap",
		ReportTimestamp: true,
	})

	flappyCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return setup{}, err
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return setup{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagDifficulty != "" {
		config.ApplyFlappyPreset(&flappyCfg, preset)
	}

	renderCfg, err := config.LoadRender(flagRenderConfig)
	if err != nil {
		return setup{}, err
	}
	renderOverrides(cmd).Apply(&renderCfg)

	asciiCfg, err := renderCfg.Build()
	if err != nil {
		return setup{}, err
	}
	bg, err := renderCfg.BackgroundColor()
	if err != nil {
		return setup{}, err
	}

	tickRate := flappyCfg.Canvas.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	s := setup{
		logger: logger,
		flappy: flappyCfg,
		render: renderCfg,
		game: tui.Config{
			Width:         flappyCfg.Canvas.Width,
			Height:        flappyCfg.Canvas.Height,
			TickRate:      tickRate,
			Seed:          flagSeed,
			Render:        asciiCfg,
			Background:    bg,
			ScreenshotDir: tui.DefaultScreenshotDir,
			Logger:        logger,
		},
	}
	logger.Debug("configuration loaded",
		"canvas", fmt.Sprintf("%dx%d", s.game.Width, s.game.Height),
		"block", asciiCfg.BlockSize(),
		"color", asciiCfg.ColorEnabled(),
		"difficulty", preset,
	)
	return s, nil
}

// renderOverrides collects the render flags set on the command line.
func renderOverrides(cmd *cobra.Command) config.RenderOverrides {
	var o config.RenderOverrides
	flags := cmd.Flags()
	if flags.Changed("block") {
		o.BlockSize = &flagBlock
	}
	if flags.Changed("color") {
		o.ColorEnabled = &flagColor
	}
	if flags.Changed("invert") {
		o.InvertColor = &flagInvert
	}
	if flags.Changed("boost") {
		o.BrightnessBoost = &flagBoost
	}
	if flags.Changed("ramp") {
		o.CharacterRamp = &flagRamp
	}
	return o
}

// newGame builds flappy from the loaded config and everything else from
// the registry.
func (s setup) newGame(id string) (registry.Game, error) {
	if id == "flappy" {
		game, err := flappy.NewWithConfig(s.flappy)
		if err != nil {
			return nil, err
		}
		return game, nil
	}
	return registry.Create(id)
}

// withBlock rebuilds the render config with a different block size.
func (s setup) withBlock(n int) (setup, error) {
	s.render.BlockSize = n
	cfg, err := s.render.Build()
	if err != nil {
		return s, err
	}
	s.game.Render = cfg
	return s, nil
}

// mustSetup is loadSetup for Run functions: errors end the process.
func mustSetup(cmd *cobra.Command) setup {
	s, err := loadSetup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// requireGame exits unless gameID is registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'asciiflap list' to see available games.")
		os.Exit(1)
	}
}
