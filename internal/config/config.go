// Package config provides YAML-based game and renderer configuration loading
// and difficulty pacing.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are in canvas pixels and speeds in pixels per tick.
type FlappyConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Palette    FlappyPalette    `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig sets the virtual resolution the game draws at.
type CanvasConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
	GroundHeight int `yaml:"ground_height"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Radius int `yaml:"radius"`
}

// FlappyPalette holds "#rrggbb" colors for the scene.
type FlappyPalette struct {
	Sky    string `yaml:"sky"`
	Cloud  string `yaml:"cloud"`
	Pipe   string `yaml:"pipe"`
	Bird   string `yaml:"bird"`
	Beak   string `yaml:"beak"`
	Ground string `yaml:"ground"`
}

// RenderConfig is the YAML form of the ASCII renderer settings.
type RenderConfig struct {
	BlockSize       int     `yaml:"block_size"`
	ColorEnabled    bool    `yaml:"color_enabled"`
	InvertColor     bool    `yaml:"invert_color"`
	BrightnessBoost float64 `yaml:"brightness_boost"`
	CharacterRamp   string  `yaml:"character_ramp"`
	Background      string  `yaml:"background"`
}

// DifficultyConfig sets how quickly pipes tighten as a round scrolls on.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Warmup       float64 `yaml:"warmup"`        // Share of the ramp already covered at the start, 0 to 1
	RampDistance int     `yaml:"ramp_distance"` // Pixels scrolled until the hardest tuning
	Hardest      Tuning  `yaml:"hardest"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

// WarmupForPreset returns the ramp share a preset starts at.
func WarmupForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
