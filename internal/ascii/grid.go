package ascii

import (
	"strings"

	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

// Grid is a row-major buffer of rendered cells. The terminal layer reads it
// to group same-colored runs, and HUD text is written straight into it.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a blank grid of the given size in cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// Reset resizes the grid, reusing its storage when large enough, and blanks it.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	n := width * height
	if cap(g.cells) < n {
		g.cells = make([]Cell, n)
	}
	g.cells = g.cells[:n]
	g.Clear()
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Clear fills the grid with uncolored spaces.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Col: i % max(g.width, 1), Row: i / max(g.width, 1), Glyph: ' '}
	}
}

// Fill copies rendered cells into the grid by their Col/Row.
func (g *Grid) Fill(cells []Cell) {
	for _, c := range cells {
		g.Set(c.Col, c.Row, c)
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	c.Col, c.Row = x, y
	g.cells[y*g.width+x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{Col: x, Row: y, Glyph: ' '}
	}
	return g.cells[y*g.width+x]
}

// SetRune writes an overlay glyph in the given color.
func (g *Grid) SetRune(x, y int, r rune, c raster.Color) {
	g.Set(x, y, Cell{Glyph: r, Color: c, HasColor: true})
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond grid bounds are clipped.
func (g *Grid) DrawText(x, y int, text string, c raster.Color) {
	i := 0
	for _, r := range text {
		g.SetRune(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (g *Grid) DrawTextCentered(y int, text string, c raster.Color) {
	x := (g.width - len([]rune(text))) / 2
	g.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (g *Grid) DrawRect(r core.Rect, fill rune, c raster.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.SetRune(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (g *Grid) DrawBox(r core.Rect, c raster.Color) {
	g.SetRune(r.X, r.Y, '┌', c)
	g.SetRune(r.Right()-1, r.Y, '┐', c)
	g.SetRune(r.X, r.Bottom()-1, '└', c)
	g.SetRune(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		g.SetRune(x, r.Y, '─', c)
		g.SetRune(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		g.SetRune(r.X, y, '│', c)
		g.SetRune(r.Right()-1, y, '│', c)
	}
}

// Run is a horizontal span of cells sharing one color.
type Run struct {
	Text     string
	Color    raster.Color
	HasColor bool
}

// Runs groups row y into same-colored spans so the terminal layer emits one
// escape sequence per span instead of per cell.
func (g *Grid) Runs(y int) []Run {
	if y < 0 || y >= g.height {
		return nil
	}
	var runs []Run
	var sb strings.Builder
	row := g.cells[y*g.width : (y+1)*g.width]
	for x := 0; x < len(row); {
		start := row[x]
		sb.Reset()
		for x < len(row) && row[x].HasColor == start.HasColor && row[x].Color == start.Color {
			sb.WriteRune(row[x].Glyph)
			x++
		}
		runs = append(runs, Run{Text: sb.String(), Color: start.Color, HasColor: start.HasColor})
	}
	return runs
}

// Row returns row y as plain text.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return strings.Repeat(" ", g.width)
	}
	var sb strings.Builder
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// String converts the grid to plain text, rows joined with newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(g.Row(y))
	}
	return sb.String()
}
