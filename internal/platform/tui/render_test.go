package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

// plainRenderer has no terminal behind it, so styles emit no escapes.
func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

func TestPainterPaint(t *testing.T) {
	g := ascii.NewGrid(4, 2)
	g.DrawText(0, 0, "ab", raster.RGB(255, 0, 0))
	g.DrawText(2, 0, "cd", raster.RGB(0, 255, 0))
	g.Set(1, 1, ascii.Cell{Glyph: '#'})

	for _, color := range []bool{true, false} {
		p := NewPainter(plainRenderer(), color)
		if got := p.Paint(g); got != "abcd\n #  " {
			t.Errorf("Paint(color=%v) = %q", color, got)
		}
	}
}

func TestPainterNilGrid(t *testing.T) {
	if got := NewPainter(plainRenderer(), true).Paint(nil); got != "" {
		t.Errorf("Paint(nil) = %q", got)
	}
}

func TestPainterStyleCacheBounded(t *testing.T) {
	p := NewPainter(plainRenderer(), true)
	g := ascii.NewGrid(256, 20)
	for y := range 20 {
		for x := range 256 {
			g.SetRune(x, y, '#', raster.RGB(uint8(x), uint8(y), 0))
		}
	}

	p.Paint(g)
	if len(p.styles) > maxCachedStyles {
		t.Errorf("style cache grew to %d entries", len(p.styles))
	}
}

func TestFitBlockSize(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		expected   int
	}{
		{"exact", 40, 24, 8},
		{"one row short", 40, 23, 9},
		{"wide terminal", 200, 24, 8},
		{"tall limited", 320, 12, 16},
		{"narrow", 30, 60, 11},
		{"huge", 400, 300, 1},
		{"no room", 0, 0, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitBlockSize(core.DefaultWidth, core.DefaultHeight, tt.cols, tt.rows)
			if got != tt.expected {
				t.Errorf("FitBlockSize(320, 192, %d, %d) = %d, expected %d", tt.cols, tt.rows, got, tt.expected)
			}
			cols, rows := ascii.GridSize(core.DefaultWidth, core.DefaultHeight, got)
			if tt.cols > 0 && (cols > tt.cols || rows > tt.rows) {
				t.Errorf("grid %dx%d does not fit %dx%d", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("██", 6); !strings.HasPrefix(got, "  █") {
		t.Errorf("centerText should count cells, got %q", got)
	}
}

func TestDrawHUD(t *testing.T) {
	g := ascii.NewGrid(40, 12)
	DrawHUD(g, HUD{Score: 3, HighScore: 10})

	if !strings.HasPrefix(g.Row(0), " Score: 3") {
		t.Errorf("row 0 = %q", g.Row(0))
	}
	if !strings.HasSuffix(g.Row(0), "Best: 10 ") {
		t.Errorf("row 0 = %q", g.Row(0))
	}
	if strings.Contains(g.String(), "GAME OVER") {
		t.Error("running game should not show the game over panel")
	}
}

func TestDrawHUDPanels(t *testing.T) {
	g := ascii.NewGrid(40, 12)
	DrawHUD(g, HUD{Score: 7, GameOver: true, Status: "saved"})

	text := g.String()
	for _, want := range []string{"GAME OVER", "Score: 7", "R restart", "┌", "┘"} {
		if !strings.Contains(text, want) {
			t.Errorf("grid missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(g.Row(11), "saved") {
		t.Errorf("status row = %q", g.Row(11))
	}

	g.Clear()
	DrawHUD(g, HUD{Paused: true})
	if !strings.Contains(g.String(), "PAUSED") {
		t.Error("paused game should show the pause panel")
	}
	if strings.Contains(g.Row(0), "Best") {
		t.Error("no best score to show yet")
	}
}

func TestDrawHUDTinyGrid(t *testing.T) {
	g := ascii.NewGrid(3, 2)
	DrawHUD(g, HUD{Score: 1, GameOver: true, Status: "x"})
	DrawHUD(nil, HUD{})
}
