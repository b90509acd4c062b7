package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

// HUD colors
var (
	hudColor    = raster.White
	accentColor = raster.RGB(255, 210, 63)
	dimColor    = raster.RGB(160, 160, 160)
)

// HUD is the text overlay drawn on top of a rendered frame.
type HUD struct {
	Score     int
	HighScore int
	Paused    bool
	GameOver  bool
	Status    string // One-line message on the bottom row
}

// DrawHUD writes the overlay into g. The grid is the session's frame buffer,
// so the overlay is gone after the next tick.
func DrawHUD(g *ascii.Grid, h HUD) {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return
	}

	score := fmt.Sprintf("Score: %d", h.Score)
	g.DrawText(1, 0, score, hudColor)
	if best := max(h.HighScore, h.Score); best > 0 {
		text := fmt.Sprintf("Best: %d", best)
		g.DrawText(g.Width()-utf8.RuneCountInString(text)-1, 0, text, dimColor)
	}

	switch {
	case h.GameOver:
		drawPanel(g, accentColor, "GAME OVER", score, "R restart  B menu")
	case h.Paused:
		drawPanel(g, hudColor, "PAUSED", "P resume  B menu")
	}

	if h.Status != "" {
		g.DrawTextCentered(g.Height()-1, h.Status, dimColor)
	}
}

// drawPanel draws a framed box in the middle of the grid with one centered
// line per entry, clipped to the grid.
func drawPanel(g *ascii.Grid, c raster.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w = min(w+4, g.Width())
	h := min(len(lines)+2, g.Height())

	r := core.NewRect((g.Width()-w)/2, (g.Height()-h)/2, w, h)
	g.DrawRect(r, ' ', c)
	g.DrawBox(r, c)
	for i, l := range lines {
		g.DrawTextCentered(r.Y+1+i, l, c)
	}
}
