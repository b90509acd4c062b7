package config

import (
	"fmt"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

// RenderOverrides carries command-line values that replace YAML settings.
// Nil fields leave the loaded value untouched.
type RenderOverrides struct {
	BlockSize       *int
	ColorEnabled    *bool
	InvertColor     *bool
	BrightnessBoost *float64
	CharacterRamp   *string
}

// Apply copies every set override into cfg.
func (o RenderOverrides) Apply(cfg *RenderConfig) {
	if o.BlockSize != nil {
		cfg.BlockSize = *o.BlockSize
	}
	if o.ColorEnabled != nil {
		cfg.ColorEnabled = *o.ColorEnabled
	}
	if o.InvertColor != nil {
		cfg.InvertColor = *o.InvertColor
	}
	if o.BrightnessBoost != nil {
		cfg.BrightnessBoost = *o.BrightnessBoost
	}
	if o.CharacterRamp != nil {
		cfg.CharacterRamp = *o.CharacterRamp
	}
}

// Build validates the settings and returns the renderer config.
func (c RenderConfig) Build() (ascii.Config, error) {
	cfg, err := ascii.NewConfig(
		ascii.WithBlockSize(c.BlockSize),
		ascii.WithColor(c.ColorEnabled),
		ascii.WithInvert(c.InvertColor),
		ascii.WithBrightnessBoost(c.BrightnessBoost),
		ascii.WithRamp(c.CharacterRamp),
	)
	if err != nil {
		return ascii.Config{}, fmt.Errorf("config: render: %w", err)
	}
	return cfg, nil
}

// BackgroundColor parses the raster background color; empty means black.
func (c RenderConfig) BackgroundColor() (raster.Color, error) {
	if c.Background == "" {
		return raster.Black, nil
	}
	col, err := raster.ParseHex(c.Background)
	if err != nil {
		return raster.Black, fmt.Errorf("config: render background: %w", err)
	}
	return col, nil
}

// Colors is a parsed FlappyPalette.
type Colors struct {
	Sky, Cloud, Pipe, Bird, Beak, Ground raster.Color
}

// Colors parses every palette entry.
func (p FlappyPalette) Colors() (Colors, error) {
	var out Colors
	entries := []struct {
		name string
		hex  string
		dst  *raster.Color
	}{
		{"sky", p.Sky, &out.Sky},
		{"cloud", p.Cloud, &out.Cloud},
		{"pipe", p.Pipe, &out.Pipe},
		{"bird", p.Bird, &out.Bird},
		{"beak", p.Beak, &out.Beak},
		{"ground", p.Ground, &out.Ground},
	}
	for _, e := range entries {
		c, err := raster.ParseHex(e.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("config: palette %s: %w", e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}
