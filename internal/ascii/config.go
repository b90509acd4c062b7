// Package ascii converts raster frames into ASCII art.
//
// A frame goes through three stages:
//
//	Blocks  - partitions the canvas into square tiles and sums luma/color
//	Select  - maps each tile's average brightness onto a character ramp
//	Compose - writes the selected glyphs as text or back into a raster
//
// Everything here is deterministic and allocation-free on the hot path once a
// Renderer has been initialized.
package ascii

import (
	"errors"
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DefaultRamp goes from darkest (blank) to brightest.
const DefaultRamp = " .:-=+*%@#"

// DefaultBlockSize is the tile edge used when none is configured.
const DefaultBlockSize = 8

var (
	// ErrInvalidBlockSize is returned when the block size is not positive.
	ErrInvalidBlockSize = errors.New("ascii: block size must be positive")
	// ErrEmptyRamp is returned when the character ramp has no entries.
	ErrEmptyRamp = errors.New("ascii: character ramp is empty")
	// ErrInvalidGlyph is returned for ramp runes that cannot occupy one text cell.
	ErrInvalidGlyph = errors.New("ascii: character ramp contains an unusable glyph")
	// ErrInvalidBoost is returned for negative, NaN or infinite brightness boosts.
	ErrInvalidBoost = errors.New("ascii: brightness boost must be a finite non-negative number")
)

// Config parameterizes sampling and glyph selection. It is immutable once
// built; use NewConfig to obtain a validated value.
type Config struct {
	blockSize    int
	colorEnabled bool
	invertColor  bool
	boost        float64
	ramp         []rune
}

// Option configures NewConfig.
type Option func(*Config)

// WithBlockSize sets the tile edge length in pixels.
func WithBlockSize(n int) Option {
	return func(c *Config) { c.blockSize = n }
}

// WithColor enables per-block color averaging.
func WithColor(enabled bool) Option {
	return func(c *Config) { c.colorEnabled = enabled }
}

// WithInvert inverts averaged colors before they are emitted.
func WithInvert(enabled bool) Option {
	return func(c *Config) { c.invertColor = enabled }
}

// WithBrightnessBoost multiplies average brightness before selection.
func WithBrightnessBoost(f float64) Option {
	return func(c *Config) { c.boost = f }
}

// WithRamp sets the darkest-to-brightest character ramp.
func WithRamp(ramp string) Option {
	return func(c *Config) { c.ramp = []rune(ramp) }
}

// NewConfig builds and validates a Config. Defaults: block size 8, color
// off, no inversion, boost 1.0, DefaultRamp.
func NewConfig(opts ...Option) (Config, error) {
	c := Config{
		blockSize: DefaultBlockSize,
		boost:     1.0,
		ramp:      []rune(DefaultRamp),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustConfig is NewConfig that panics on invalid options. Intended for
// package-level defaults and tests.
func MustConfig(opts ...Option) Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) validate() error {
	if c.blockSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, c.blockSize)
	}
	if len(c.ramp) == 0 {
		return ErrEmptyRamp
	}
	for i, r := range c.ramp {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return fmt.Errorf("%w: %U at position %d", ErrInvalidGlyph, r, i)
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return fmt.Errorf("%w: %q at position %d is double width", ErrInvalidGlyph, r, i)
		}
	}
	if math.IsNaN(c.boost) || math.IsInf(c.boost, 0) || c.boost < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidBoost, c.boost)
	}
	return nil
}

// BlockSize returns the tile edge length in pixels.
func (c Config) BlockSize() int { return c.blockSize }

// ColorEnabled reports whether per-block color is averaged and emitted.
func (c Config) ColorEnabled() bool { return c.colorEnabled }

// InvertColor reports whether averaged colors are inverted.
func (c Config) InvertColor() bool { return c.invertColor }

// BrightnessBoost returns the brightness multiplier.
func (c Config) BrightnessBoost() float64 { return c.boost }

// Ramp returns a copy of the character ramp.
func (c Config) Ramp() []rune {
	out := make([]rune, len(c.ramp))
	copy(out, c.ramp)
	return out
}

// RampLen returns the number of ramp entries.
func (c Config) RampLen() int { return len(c.ramp) }

// Glyph returns ramp entry i.
func (c Config) Glyph(i int) rune { return c.ramp[i] }

// IsZero reports whether c was never built.
func (c Config) IsZero() bool { return len(c.ramp) == 0 }
