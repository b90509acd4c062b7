package raster

import "testing"

// countColor returns how many pixels of img equal c.
func countColor(img *Image, c Color) int {
	n := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDrawRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		expected   int
	}{
		{"inside", 1, 1, 3, 2, 6},
		{"clipped left/top", -2, -2, 4, 4, 4},
		{"clipped right/bottom", 8, 8, 5, 5, 4},
		{"covers canvas", -5, -5, 50, 50, 100},
		{"zero width", 2, 2, 0, 3, 0},
		{"negative height", 2, 2, 3, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := mustNew(t, 10, 10)
			img.DrawRect(tc.x, tc.y, tc.w, tc.h, White)
			if got := countColor(img, White); got != tc.expected {
				t.Errorf("painted %d pixels, expected %d", got, tc.expected)
			}
		})
	}
}

func TestDrawCircleFilled(t *testing.T) {
	img := mustNew(t, 11, 11)
	img.DrawCircle(5, 5, 2, White, true)

	// Pixels with dx²+dy² <= 4 inside a radius-2 disc.
	if got := countColor(img, White); got != 13 {
		t.Errorf("filled circle painted %d pixels, expected 13", got)
	}
	if img.At(5, 5) != White {
		t.Error("centre should be painted")
	}
	if img.At(7, 7) != Black {
		t.Error("(7,7) lies outside the radius and should stay black")
	}
}

func TestDrawCircleStroked(t *testing.T) {
	img := mustNew(t, 11, 11)
	img.DrawCircle(5, 5, 3, White, false)

	if img.At(5, 5) == White {
		t.Error("outline should not paint the centre")
	}
	if img.At(8, 5) != White || img.At(5, 2) != White {
		t.Error("outline should paint the points on the radius")
	}

	filled := mustNew(t, 11, 11)
	filled.DrawCircle(5, 5, 3, White, true)
	if countColor(img, White) >= countColor(filled, White) {
		t.Error("outline should paint fewer pixels than the filled disc")
	}
}

func TestDrawCircleEdgeRadii(t *testing.T) {
	img := mustNew(t, 5, 5)
	img.DrawCircle(2, 2, -1, White, true)
	if countColor(img, White) != 0 {
		t.Error("negative radius should be a no-op")
	}

	img.DrawCircle(2, 2, 0, White, false)
	if countColor(img, White) != 1 || img.At(2, 2) != White {
		t.Error("zero radius should paint only the centre")
	}
}

func TestDrawTriangleWinding(t *testing.T) {
	cw := mustNew(t, 10, 10)
	ccw := mustNew(t, 10, 10)

	cw.DrawTriangle(Pt(1, 1), Pt(8, 1), Pt(1, 8), White, true)
	ccw.DrawTriangle(Pt(1, 1), Pt(1, 8), Pt(8, 1), White, true)

	if !cw.Equal(ccw) {
		t.Error("winding order should not change the filled result")
	}
	if cw.At(2, 2) != White {
		t.Error("interior point should be painted")
	}
	if cw.At(8, 8) != Black {
		t.Error("point beyond the hypotenuse should stay black")
	}
}

func TestDrawTriangleStroked(t *testing.T) {
	img := mustNew(t, 12, 12)
	img.DrawTriangle(Pt(1, 1), Pt(10, 1), Pt(1, 10), White, false)

	if img.At(5, 1) != White || img.At(1, 5) != White {
		t.Error("outline should paint the edges")
	}
	if img.At(3, 3) != Black {
		t.Error("outline should leave the interior empty")
	}
}

func TestDrawTriangleDegenerate(t *testing.T) {
	img := mustNew(t, 10, 10)
	img.DrawTriangle(Pt(0, 0), Pt(4, 4), Pt(8, 8), White, true)

	if countColor(img, White) != 9 {
		t.Errorf("collinear triangle painted %d pixels, expected the 9-pixel diagonal", countColor(img, White))
	}
}

func TestDrawLineBresenham(t *testing.T) {
	img := mustNew(t, 10, 10)
	img.DrawLine(Pt(0, 0), Pt(9, 0), 1, White)
	if countColor(img, White) != 10 {
		t.Errorf("horizontal line painted %d pixels, expected 10", countColor(img, White))
	}

	img.Clear(Black)
	img.DrawLine(Pt(0, 0), Pt(9, 9), 1, White)
	for i := 0; i < 10; i++ {
		if img.At(i, i) != White {
			t.Errorf("diagonal pixel (%d,%d) not painted", i, i)
		}
	}

	img.Clear(Black)
	img.DrawLine(Pt(3, 3), Pt(3, 3), 1, White)
	if countColor(img, White) != 1 {
		t.Error("single-point line should paint exactly one pixel")
	}
}

func TestDrawLineThick(t *testing.T) {
	img := mustNew(t, 20, 20)
	img.DrawLine(Pt(2, 10), Pt(17, 10), 4, White)

	for _, y := range []int{8, 9, 10, 11, 12} {
		if img.At(10, y) != White {
			t.Errorf("thick line should cover (10,%d)", y)
		}
	}
	if img.At(10, 14) != Black || img.At(10, 6) != Black {
		t.Error("thick line should not extend past thickness/2")
	}
}

func TestDrawLinePartiallyOffCanvas(t *testing.T) {
	img := mustNew(t, 10, 10)
	img.DrawLine(Pt(-5, 5), Pt(14, 5), 1, White)
	if countColor(img, White) != 10 {
		t.Errorf("clipped line painted %d pixels, expected 10", countColor(img, White))
	}
}

func TestShapesFullyOutsideLeaveCanvasUnchanged(t *testing.T) {
	img := mustNew(t, 16, 16)
	img.Clear(RGB(12, 34, 56))
	before := img.Clone()

	img.DrawRect(20, 20, 5, 5, White)
	img.DrawRect(-10, 0, 5, 5, White)
	img.DrawCircle(-20, -20, 5, White, true)
	img.DrawCircle(40, 8, 10, White, false)
	img.DrawTriangle(Pt(-10, -10), Pt(-1, -10), Pt(-5, -1), White, true)
	img.DrawTriangle(Pt(100, 100), Pt(120, 100), Pt(110, 130), White, false)
	img.DrawLine(Pt(-10, -3), Pt(30, -3), 1, White)
	img.DrawLine(Pt(-10, 30), Pt(30, 30), 5, White)

	if !img.Equal(before) {
		t.Error("shapes fully outside the canvas should leave it byte-identical")
	}
}

func TestDrawCircleHugeRadius(t *testing.T) {
	img := mustNew(t, 16, 16)
	img.DrawCircle(8, 8, 1<<32, White, true)
	if n := countColor(img, White); n != 256 {
		t.Errorf("huge filled circle painted %d of 256 pixels", n)
	}

	img = mustNew(t, 16, 16)
	img.DrawCircle(8, 8, 1<<32, White, false)
	if n := countColor(img, White); n != 0 {
		t.Errorf("huge outline painted %d pixels, expected 0", n)
	}

	// The band of r=12 still reaches the corners.
	img = mustNew(t, 16, 16)
	img.DrawCircle(8, 8, 12, White, false)
	if img.At(0, 0) != White || img.At(8, 8) != Black {
		t.Error("outline near the canvas reach should paint the corners only")
	}
}

func TestDrawLineLongSegmentsAreClipped(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   int
	}{
		{"horizontal", Pt(-1<<40, 4), Pt(1<<40, 4), 10},
		{"vertical", Pt(2, -1<<40), Pt(2, 1<<40), 10},
		{"diagonal", Pt(-1000, -1000), Pt(1000, 1000), 10},
		{"miss", Pt(-1000, 20), Pt(1000, 2020), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := mustNew(t, 10, 10)
			img.DrawLine(tt.p1, tt.p2, 1, White)
			if n := countColor(img, White); n != tt.want {
				t.Errorf("painted %d pixels, expected %d", n, tt.want)
			}
		})
	}
}
