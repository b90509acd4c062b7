// Package flappy implements a Flappy Bird-style game drawn into a pixel
// canvas. The bird is a circle that must pass through gaps in scrolling
// pipes; all distances are in canvas pixels.
package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/asciiflap/internal/config"
	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
	"github.com/vovakirdan/asciiflap/internal/registry"
)

// Decorative layout.
const (
	capHeight    = 6 // Pipe lip height
	capOverhang  = 3 // Pipe lip overhang on each side
	stripeGap    = 16
	cloudCount   = 3
	cloudSpeed   = 0.25 // Cloud parallax relative to pipe speed
	wingFlapTick = 4
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg    config.FlappyConfig
	colors config.Colors
	pace   config.Pace

	width, height int
	floorY        int

	birdY   float64 // Centre of the bird
	birdVel float64 // Vertical velocity, positive is down
	pipes   *PipeManager
	scroll  float64 // Distance travelled, drives clouds and ground stripes

	score     int
	gameOver  bool
	paused    bool
	tickCount int
	flapTick  int // Tick of the last flap, for the wing animation
}

// New creates a game with the default configuration.
func New() *Game {
	g, err := NewWithConfig(config.DefaultFlappyConfig())
	if err != nil {
		panic(fmt.Sprintf("flappy: default config: %v", err))
	}
	return g
}

// NewWithConfig creates a game from a loaded configuration.
func NewWithConfig(cfg config.FlappyConfig) (*Game, error) {
	colors, err := cfg.Palette.Colors()
	if err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	return &Game{
		cfg:    cfg,
		colors: colors,
		pace:   config.NewPace(cfg),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Config returns the game's configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset initializes or restarts the game. A zero canvas size in cfg falls
// back to the configured canvas.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = g.cfg.Canvas.Width, g.cfg.Canvas.Height
	}
	g.width, g.height = cfg.Width, cfg.Height
	g.floorY = max(g.height-g.cfg.Obstacles.GroundHeight, 1)

	g.birdY = float64(g.floorY) / 2
	g.birdVel = 0
	g.scroll = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.flapTick = -wingFlapTick

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, g.width, g.floorY, &g.cfg)
	} else {
		g.pipes.Resize(g.width, g.floorY)
		g.pipes.Reset(cfg.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var res core.StepResult
	g.tickCount++

	if in.Has(core.ActionFlap) {
		g.birdVel = g.cfg.Physics.JumpImpulse
		g.flapTick = g.tickCount
		res.Flapped = true
	}

	// Apply physics
	g.birdVel = math.Min(g.birdVel+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	g.birdY += g.birdVel

	tune := g.pace.At(g.scroll)
	g.scroll += tune.Speed

	radius := float64(g.cfg.Player.Radius)
	passed := g.pipes.Update(g.cfg.Player.X-g.cfg.Player.Radius, tune)
	g.score += passed
	res.Scored = passed > 0

	// Hit the ceiling
	if g.birdY-radius < 0 {
		g.birdY = radius
		g.gameOver = true
	}

	// Hit the ground
	if g.birdY+radius >= float64(g.floorY) {
		g.birdY = float64(g.floorY) - radius
		g.gameOver = true
	}

	if g.pipes.CheckCollision(float64(g.cfg.Player.X), g.birdY, radius) {
		g.gameOver = true
	}

	res.Crashed = g.gameOver
	res.State = g.State()
	return res
}

// Render paints the scene into dst.
func (g *Game) Render(dst *raster.Image) {
	dst.Clear(g.colors.Sky)
	g.drawClouds(dst)
	for _, p := range g.pipes.Arena().All() {
		g.drawPipe(dst, *p)
	}
	g.drawGround(dst)
	g.drawBird(dst)
}

func (g *Game) drawClouds(dst *raster.Image) {
	span := g.width + 64
	for i := 0; i < cloudCount; i++ {
		x := i*span/cloudCount + 40 - int(g.scroll*cloudSpeed)
		x = (x%span+span)%span - 32
		y := 24 + (i*37)%max(g.floorY/2, 1)
		dst.DrawCircle(x, y, 10, g.colors.Cloud, true)
		dst.DrawCircle(x+12, y+2, 8, g.colors.Cloud, true)
		dst.DrawCircle(x-11, y+3, 7, g.colors.Cloud, true)
	}
}

func (g *Game) drawPipe(dst *raster.Image, p Pipe) {
	w := g.cfg.Obstacles.PipeWidth
	x := p.Left()
	bottomY := p.GapY + p.GapHeight

	dst.DrawRect(x, 0, w, p.GapY, g.colors.Pipe)
	dst.DrawRect(x, bottomY, w, g.floorY-bottomY, g.colors.Pipe)

	// Lips facing the gap
	lip := shade(g.colors.Pipe, 0.8)
	dst.DrawRect(x-capOverhang, p.GapY-capHeight, w+2*capOverhang, capHeight, lip)
	dst.DrawRect(x-capOverhang, bottomY, w+2*capOverhang, capHeight, lip)

	// Highlight down the left side
	hi := shade(g.colors.Pipe, 1.3)
	dst.DrawLine(raster.Pt(x+3, 0), raster.Pt(x+3, p.GapY-capHeight-1), 2, hi)
	dst.DrawLine(raster.Pt(x+3, bottomY+capHeight), raster.Pt(x+3, g.floorY-1), 2, hi)
}

func (g *Game) drawGround(dst *raster.Image) {
	dst.DrawRect(0, g.floorY, g.width, g.height-g.floorY, g.colors.Ground)
	edge := shade(g.colors.Ground, 1.2)
	dst.DrawLine(raster.Pt(0, g.floorY), raster.Pt(g.width-1, g.floorY), 2, edge)

	stripe := shade(g.colors.Ground, 0.7)
	offset := int(g.scroll) % stripeGap
	for x := -offset; x < g.width+stripeGap; x += stripeGap {
		dst.DrawLine(raster.Pt(x, g.floorY+3), raster.Pt(x-6, g.height-1), 3, stripe)
	}
}

func (g *Game) drawBird(dst *raster.Image) {
	x := g.cfg.Player.X
	y := core.Round(g.birdY)
	r := g.cfg.Player.Radius

	dst.DrawCircle(x, y, r, g.colors.Bird, true)

	// Beak
	dst.DrawTriangle(
		raster.Pt(x+r-2, y-r/3-1),
		raster.Pt(x+r+r/2+2, y),
		raster.Pt(x+r-2, y+r/3+1),
		g.colors.Beak, true,
	)

	// Wing flips up for a few ticks after each flap
	wing := shade(g.colors.Bird, 0.75)
	tip := y + r/2
	if g.tickCount-g.flapTick < wingFlapTick {
		tip = y - r
	}
	dst.DrawTriangle(raster.Pt(x-r, y), raster.Pt(x-2, y), raster.Pt(x-r/2-1, tip), wing, true)

	// Eye
	dst.DrawCircle(x+r/3, y-r/3, max(r/4, 1), raster.Black, true)
}

// shade scales every channel of c by f, clamped to 255.
func shade(c raster.Color, f float64) raster.Color {
	scale := func(v uint8) uint8 {
		return uint8(core.ClampF(float64(v)*f, 0, 255))
	}
	return raster.RGB(scale(c.R), scale(c.G), scale(c.B))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
