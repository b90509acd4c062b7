// Package session ties a game, its raster canvas and the ASCII renderer
// together. A Session replaces process-wide game state: everything a frame
// needs hangs off one value with an explicit lifecycle.
package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
	"github.com/vovakirdan/asciiflap/internal/registry"
)

// ErrNotInitialized is returned by Tick and the render helpers before
// Initialize or after Shutdown.
var ErrNotInitialized = errors.New("session: not initialized")

// Output selects what Tick produces.
type Output int

const (
	OutputGrid   Output = iota // Cell grid for terminal display
	OutputText                 // Plain text frame
	OutputRaster               // Glyph bitmaps as an RGB raster
)

// Frame is the result of one tick. Only the field matching the session's
// Output is set. Grid, Text and Raster borrow session buffers and are valid
// until the next Tick; none is set when the frame was skipped.
type Frame struct {
	Result  core.StepResult
	Grid    *ascii.Grid
	Text    ascii.TextFrame
	Raster  ascii.RasterFrame
	Version uint64
}

// Stats counts frames since the current round started.
type Stats struct {
	Frames   int // Tick calls, paused or not
	Ticks    int // Simulated ticks as reported by the game
	Rendered int
	Skipped  int
}

// Session owns one game and the buffers it renders through.
// It is not safe for concurrent use.
type Session struct {
	game     registry.Game
	cfg      ascii.Config
	renderer *ascii.Renderer
	canvas   *raster.Image
	logger   *log.Logger

	rendererOpts []ascii.RendererOption
	output       Output
	tickRate     int
	seed         int64

	stats Stats
	ready bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for skipped frames and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithAllocator sets the allocator for the renderer's output buffers.
func WithAllocator(a ascii.Allocator) Option {
	return func(s *Session) { s.rendererOpts = append(s.rendererOpts, ascii.WithAllocator(a)) }
}

// WithBackground sets the background of raster output.
func WithBackground(c raster.Color) Option {
	return func(s *Session) { s.rendererOpts = append(s.rendererOpts, ascii.WithBackground(c)) }
}

// WithOutput sets the kind of frame Tick produces.
func WithOutput(o Output) Option {
	return func(s *Session) { s.output = o }
}

// WithTickRate sets the simulation rate passed to the game.
func WithTickRate(rate int) Option {
	return func(s *Session) { s.tickRate = rate }
}

// WithSeed fixes the RNG seed. Zero picks one from the clock.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// New creates a session for game rendered with cfg.
func New(game registry.Game, cfg ascii.Config, opts ...Option) *Session {
	s := &Session{
		game:     game,
		cfg:      cfg,
		tickRate: core.DefaultTickRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "session",
		})
	}
	s.renderer = ascii.NewRenderer(cfg, s.rendererOpts...)
	return s
}

// Initialize allocates the canvas at the given virtual resolution and resets
// the game. Calling it again with the same size is a no-op; the resolution
// cannot change while the session is live.
func (s *Session) Initialize(width, height int) error {
	if s.ready {
		if width == s.canvas.Width() && height == s.canvas.Height() {
			return nil
		}
		return fmt.Errorf("session: initialize %dx%d: %w", width, height, ascii.ErrResizeUnsupported)
	}

	canvas, err := raster.New(width, height)
	if err != nil {
		return fmt.Errorf("session: canvas: %w", err)
	}
	if err := s.renderer.Initialize(width, height); err != nil {
		return fmt.Errorf("session: renderer: %w", err)
	}

	s.canvas = canvas
	s.ready = true
	s.resetGame(s.seed)

	cols, rows := s.renderer.GridSize()
	s.logger.Debug("session initialized",
		"game", s.game.ID(),
		"canvas", fmt.Sprintf("%dx%d", width, height),
		"grid", fmt.Sprintf("%dx%d", cols, rows),
		"block", s.cfg.BlockSize(),
	)
	return nil
}

// Reset restarts the game with a new seed. Zero picks one from the clock.
func (s *Session) Reset(seed int64) {
	if !s.ready {
		return
	}
	s.resetGame(seed)
}

func (s *Session) resetGame(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.seed = seed
	s.stats = Stats{}
	s.game.Reset(core.RuntimeConfig{
		Width:    s.canvas.Width(),
		Height:   s.canvas.Height(),
		TickRate: s.tickRate,
		Seed:     seed,
	})
}

// Tick steps the game once, repaints the canvas and renders it. A render
// failure skips the frame: the error is logged, counted and returned, and
// the game state has still advanced.
func (s *Session) Tick(in core.InputFrame) (Frame, error) {
	if !s.ready {
		return Frame{}, ErrNotInitialized
	}
	s.stats.Frames++
	res := s.game.Step(in)
	s.stats.Ticks = res.State.Ticks

	frame, err := s.paint()
	frame.Result = res
	if err != nil {
		s.stats.Skipped++
		s.logger.Warn("frame skipped", "game", s.game.ID(), "frame", s.stats.Frames, "error", err)
		return frame, err
	}
	s.stats.Rendered++
	return frame, nil
}

// Redraw repaints the current state without stepping the game.
func (s *Session) Redraw() (Frame, error) {
	if !s.ready {
		return Frame{}, ErrNotInitialized
	}
	frame, err := s.paint()
	frame.Result = core.StepResult{State: s.game.State()}
	return frame, err
}

func (s *Session) paint() (Frame, error) {
	s.draw()

	var frame Frame
	var err error
	switch s.output {
	case OutputText:
		frame.Text, err = s.renderer.RenderText(s.canvas)
	case OutputRaster:
		frame.Raster, err = s.renderer.RenderRaster(s.canvas)
	default:
		frame.Grid, err = s.renderer.RenderGrid(s.canvas)
	}
	if err != nil {
		return Frame{}, err
	}
	frame.Version = s.renderer.Version()
	return frame, nil
}

func (s *Session) draw() {
	s.canvas.Clear(raster.Black)
	s.game.Render(s.canvas)
}

// Text renders the current canvas as a text frame.
func (s *Session) Text() (ascii.TextFrame, error) {
	if !s.ready {
		return ascii.TextFrame{}, ErrNotInitialized
	}
	s.draw()
	return s.renderer.RenderText(s.canvas)
}

// Raster renders the current canvas as glyph bitmaps.
func (s *Session) Raster() (ascii.RasterFrame, error) {
	if !s.ready {
		return ascii.RasterFrame{}, ErrNotInitialized
	}
	s.draw()
	return s.renderer.RenderRaster(s.canvas)
}

// Shutdown releases the canvas and renderer buffers. Calling it again is a
// no-op; the session may be initialized afresh afterwards.
func (s *Session) Shutdown() {
	if !s.ready {
		return
	}
	s.renderer.Shutdown()
	s.canvas = nil
	s.ready = false
	s.logger.Debug("session shut down", "game", s.game.ID(), "rendered", s.stats.Rendered, "skipped", s.stats.Skipped)
}

// Initialized reports whether the session is live.
func (s *Session) Initialized() bool { return s.ready }

// Game returns the session's game.
func (s *Session) Game() registry.Game { return s.game }

// Config returns the render configuration.
func (s *Session) Config() ascii.Config { return s.cfg }

// Seed returns the seed of the current round.
func (s *Session) Seed() int64 { return s.seed }

// Stats returns frame counters for the current round.
func (s *Session) Stats() Stats { return s.stats }

// GridSize returns the text grid size in cells.
func (s *Session) GridSize() (cols, rows int) { return s.renderer.GridSize() }

// Canvas returns the raster canvas, or nil when not initialized.
func (s *Session) Canvas() *raster.Image { return s.canvas }
