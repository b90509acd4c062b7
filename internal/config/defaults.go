package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/render.yaml
var defaultRenderYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: CanvasConfig{
			Width:    320,
			Height:   192,
			TickRate: 30,
		},
		Physics: FlappyPhysics{
			Gravity:      0.6,
			JumpImpulse:  -6.5,
			MaxFallSpeed: 9.0,
			BaseSpeed:    3.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    32,
			PipeSpacing:  144,
			MinGapSize:   64,
			MaxGapSize:   80,
			TopMargin:    16,
			BottomMargin: 16,
			GroundHeight: 16,
		},
		Player: FlappyPlayer{
			X:      80,
			Radius: 8,
		},
		Palette: FlappyPalette{
			Sky:    "#0b1426",
			Cloud:  "#3a4a60",
			Pipe:   "#3fbf4f",
			Bird:   "#ffd23f",
			Beak:   "#ff7f11",
			Ground: "#c2a36b",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			Warmup:       0.0,
			RampDistance: 7200,
			Hardest: Tuning{
				Speed:   6.0,
				Gap:     64,
				Spacing: 112,
			},
		},
	}
}

// DefaultRenderConfig returns the default renderer configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		BlockSize:       8,
		ColorEnabled:    true,
		BrightnessBoost: 1.0,
		CharacterRamp:   " .:-=+*%@#",
		Background:      "#000000",
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "flappy":
		return defaultFlappyYAML
	case "render":
		return defaultRenderYAML
	default:
		return nil
	}
}
