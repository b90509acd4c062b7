package config

import "github.com/vovakirdan/asciiflap/internal/core"

// Tuning is the pipe layout in effect at one point of a round.
type Tuning struct {
	Speed   float64 `yaml:"speed"`   // Scroll speed, px per tick
	Gap     int     `yaml:"gap"`     // Largest gap a new pipe may get, px
	Spacing int     `yaml:"spacing"` // Distance between pipe left edges, px
}

// Pace moves the pipe tuning from the configured base towards the hardest
// tuning as the playfield scrolls. A disabled pace stays at its warmup point.
type Pace struct {
	base    Tuning
	hardest Tuning
	warmup  float64
	ramp    float64
	enabled bool
}

// NewPace builds the pace for a flappy config. The base tuning comes from
// the physics and obstacle sections.
func NewPace(cfg FlappyConfig) Pace {
	return Pace{
		base: Tuning{
			Speed:   cfg.Physics.BaseSpeed,
			Gap:     cfg.Obstacles.MaxGapSize,
			Spacing: cfg.Obstacles.PipeSpacing,
		},
		hardest: cfg.Difficulty.Hardest,
		warmup:  core.ClampF(cfg.Difficulty.Warmup, 0, 1),
		ramp:    float64(cfg.Difficulty.RampDistance),
		enabled: cfg.Difficulty.Enabled,
	}
}

// Level reports how far along the ramp a round is after scrolling distance
// pixels, from 0 (base) to 1 (hardest).
func (p Pace) Level(distance float64) float64 {
	if !p.enabled {
		return p.warmup
	}
	if p.ramp <= 0 {
		return 1
	}
	return core.Lerp(p.warmup, 1, distance/p.ramp)
}

// At returns the tuning after scrolling distance pixels.
func (p Pace) At(distance float64) Tuning {
	t := p.Level(distance)
	return Tuning{
		Speed:   core.Lerp(p.base.Speed, p.hardest.Speed, t),
		Gap:     core.Round(core.Lerp(float64(p.base.Gap), float64(p.hardest.Gap), t)),
		Spacing: core.Round(core.Lerp(float64(p.base.Spacing), float64(p.hardest.Spacing), t)),
	}
}
