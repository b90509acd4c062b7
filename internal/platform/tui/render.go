package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/asciiflap/internal/ascii"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

// maxCachedStyles bounds the style cache; averaged block colors are not a
// small palette.
const maxCachedStyles = 4096

// Painter converts a character grid to a styled string for display.
// Each Bubble Tea program owns one; it is not safe for concurrent use.
type Painter struct {
	r      *lipgloss.Renderer
	color  bool
	plain  lipgloss.Style
	styles map[raster.Color]lipgloss.Style
}

// NewPainter creates a painter that styles through r. A nil renderer uses
// the lipgloss default; color false prints glyphs only.
func NewPainter(r *lipgloss.Renderer, color bool) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		r:      r,
		color:  color,
		plain:  r.NewStyle(),
		styles: make(map[raster.Color]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer used for styling.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.r
}

// Paint renders the grid row by row. Adjacent cells with the same color
// are grouped so each span carries one escape sequence.
func (p *Painter) Paint(g *ascii.Grid) string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if !p.color {
			sb.WriteString(g.Row(y))
			continue
		}
		for _, run := range g.Runs(y) {
			sb.WriteString(p.style(run).Render(run.Text))
		}
	}
	return sb.String()
}

func (p *Painter) style(run ascii.Run) lipgloss.Style {
	if !run.HasColor {
		return p.plain
	}
	if s, ok := p.styles[run.Color]; ok {
		return s
	}
	if len(p.styles) >= maxCachedStyles {
		clear(p.styles)
	}
	s := p.r.NewStyle().Foreground(lipgloss.Color(run.Color.Hex()))
	p.styles[run.Color] = s
	return s
}
