package ascii

import (
	"testing"

	"github.com/vovakirdan/asciiflap/internal/core"
	"github.com/vovakirdan/asciiflap/internal/raster"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(10, 5)

	if g.Width() != 10 || g.Height() != 5 {
		t.Errorf("grid is %dx%d, expected 10x5", g.Width(), g.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c := g.Get(x, y); c.Glyph != ' ' || c.HasColor {
				t.Errorf("cell (%d,%d) = %+v, expected a blank", x, y, c)
			}
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 5)
	g.SetRune(3, 2, '@', raster.White)

	c := g.Get(3, 2)
	if c.Glyph != '@' || c.Color != raster.White || !c.HasColor {
		t.Errorf("Get(3, 2) = %+v", c)
	}
	if c.Col != 3 || c.Row != 2 {
		t.Errorf("cell position = (%d,%d), expected (3,2)", c.Col, c.Row)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	before := g.String()

	g.SetRune(-1, 0, 'X', raster.White)
	g.SetRune(0, 4, 'X', raster.White)
	g.SetRune(100, 100, 'X', raster.White)

	if g.String() != before {
		t.Error("out-of-bounds writes should be ignored")
	}
	if c := g.Get(-1, -1); c.Glyph != ' ' {
		t.Errorf("Get out of bounds = %q, expected a space", c.Glyph)
	}
}

func TestGridDrawText(t *testing.T) {
	g := NewGrid(8, 1)
	g.DrawText(5, 0, "Hello", raster.White)

	if g.Row(0) != "     Hel" {
		t.Errorf("Row(0) = %q, expected clipped text", g.Row(0))
	}
}

func TestGridDrawTextCentered(t *testing.T) {
	g := NewGrid(9, 1)
	g.DrawTextCentered(0, "abc", raster.White)

	if g.Row(0) != "   abc   " {
		t.Errorf("Row(0) = %q, expected centered text", g.Row(0))
	}
}

func TestGridDrawBox(t *testing.T) {
	g := NewGrid(4, 3)
	g.DrawBox(core.NewRect(0, 0, 4, 3), raster.White)

	expected := "┌──┐\n│  │\n└──┘"
	if g.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", g.String(), expected)
	}
}

func TestGridDrawRect(t *testing.T) {
	g := NewGrid(4, 3)
	g.DrawRect(core.NewRect(1, 1, 2, 1), '=', raster.White)

	if g.Row(1) != " == " {
		t.Errorf("Row(1) = %q, expected %q", g.Row(1), " == ")
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill([]Cell{
		{Col: 0, Row: 0, Glyph: '#'},
		{Col: 1, Row: 1, Glyph: '.'},
		{Col: 5, Row: 5, Glyph: '!'},
	})

	if g.String() != "# \n ." {
		t.Errorf("Fill() grid = %q", g.String())
	}
}

func TestGridRuns(t *testing.T) {
	red := raster.RGB(255, 0, 0)
	g := NewGrid(6, 1)
	g.DrawText(0, 0, "ab", red)
	g.DrawText(2, 0, "cd", raster.White)

	runs := g.Runs(0)
	if len(runs) != 3 {
		t.Fatalf("Runs(0) returned %d runs, expected 3: %+v", len(runs), runs)
	}
	expected := []Run{
		{Text: "ab", Color: red, HasColor: true},
		{Text: "cd", Color: raster.White, HasColor: true},
		{Text: "  "},
	}
	for i, r := range runs {
		if r != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, r, expected[i])
		}
	}
	if g.Runs(3) != nil {
		t.Error("Runs out of range should return nil")
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetRune(0, 0, 'X', raster.White)
	g.Reset(2, 3)

	if g.Width() != 2 || g.Height() != 3 {
		t.Errorf("grid is %dx%d after Reset, expected 2x3", g.Width(), g.Height())
	}
	if g.Get(0, 0).Glyph != ' ' {
		t.Error("Reset should blank the grid")
	}
}
