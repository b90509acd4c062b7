// Package shapes is an endless demo scene that exercises every drawing
// primitive. It is useful for tuning block sizes and ramps.
package shapes

import (
	"math"

	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
	"github.com/vovakirdan/asciiflap/internal/registry"
)

var (
	background = raster.RGB(8, 8, 16)
	orbitColor = raster.RGB(90, 200, 255)
	sunColor   = raster.RGB(255, 220, 120)
	triColor   = raster.RGB(255, 90, 140)
	lineColor  = raster.RGB(160, 255, 160)
)

const orbiters = 5

// Scene animates circles, triangles and lines around the canvas centre.
type Scene struct {
	width, height int
	tickRate      int
	ticks         int
	paused        bool
}

// New creates the scene.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this game.
func (s *Scene) ID() string { return "shapes" }

// Title returns the display name for this game.
func (s *Scene) Title() string { return "Shape Demo" }

// Reset restarts the animation.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.width, s.height = cfg.Width, cfg.Height
	if s.width <= 0 || s.height <= 0 {
		s.width, s.height = core.DefaultWidth, core.DefaultHeight
	}
	s.tickRate = cfg.TickRate
	if s.tickRate <= 0 {
		s.tickRate = core.DefaultTickRate
	}
	s.ticks = 0
	s.paused = false
}

// Step advances the animation by one tick. The scene never ends.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if !s.paused {
		s.ticks++
	}
	return core.StepResult{State: s.State()}
}

// Render paints the current frame into dst.
func (s *Scene) Render(dst *raster.Image) {
	dst.Clear(background)

	cx, cy := s.width/2, s.height/2
	t := float64(s.ticks) / float64(s.tickRate)
	minDim := float64(min(s.width, s.height))

	// Sun and rings
	dst.DrawCircle(cx, cy, int(minDim*0.12), sunColor, true)
	dst.DrawCircle(cx, cy, int(minDim*0.42), orbitColor, false)

	// Orbiting stroked circles
	for i := 0; i < orbiters; i++ {
		a := t*0.8 + float64(i)*2*math.Pi/orbiters
		r := minDim * 0.3
		x := cx + core.Round(math.Cos(a)*r*1.4)
		y := cy + core.Round(math.Sin(a)*r)
		dst.DrawCircle(x, y, int(minDim*0.06), orbitColor, false)
	}

	// Spinning triangles in two corners, one filled, one outlined
	s.drawTriangle(dst, s.width/6, s.height/4, minDim*0.14, t*1.5, true)
	s.drawTriangle(dst, s.width*5/6, s.height*3/4, minDim*0.14, -t*1.2, false)

	// A sweeping thick line
	a := t * 0.5
	ex := cx + core.Round(math.Cos(a)*float64(s.width))
	ey := cy + core.Round(math.Sin(a)*float64(s.height))
	dst.DrawLine(raster.Pt(cx, cy), raster.Pt(ex, ey), 3, lineColor)
}

func (s *Scene) drawTriangle(dst *raster.Image, cx, cy int, r, angle float64, filled bool) {
	var pts [3]raster.Point
	for i := range pts {
		a := angle + float64(i)*2*math.Pi/3
		pts[i] = raster.Pt(cx+core.Round(math.Cos(a)*r), cy+core.Round(math.Sin(a)*r))
	}
	dst.DrawTriangle(pts[0], pts[1], pts[2], triColor, filled)
}

// State reports elapsed whole seconds as the score.
func (s *Scene) State() core.GameState {
	rate := max(s.tickRate, 1)
	return core.GameState{Score: s.ticks / rate, Ticks: s.ticks, Paused: s.paused}
}

func init() {
	registry.Register("shapes", func() registry.Game {
		return New()
	})
}
