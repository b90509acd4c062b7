package raster

import (
	"math"

	"github.com/vovakirdan/asciiflap/internal/core"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a shorthand for building a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// clipBox intersects the inclusive box [x0,x1]x[y0,y1] with the canvas and
// returns it as half-open ranges. ok is false when nothing is left.
func (img *Image) clipBox(x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int, ok bool) {
	cx0 = core.Max(x0, 0)
	cy0 = core.Max(y0, 0)
	cx1 = core.Min(x1+1, img.width)
	cy1 = core.Min(y1+1, img.height)
	return cx0, cy0, cx1, cy1, cx0 < cx1 && cy0 < cy1
}

// DrawRect fills the axis-aligned rectangle at (x, y) of size w x h.
func (img *Image) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0, x1, y1, ok := img.clipBox(x, y, x+w-1, y+h-1)
	if !ok {
		return
	}
	for row := y0; row < y1; row++ {
		img.fillSpan(row, x0, x1, c)
	}
}

// DrawCircle paints a circle centred at (cx, cy). Filled circles cover every
// pixel with dx²+dy² <= r²; outlines cover the one pixel wide band just
// inside that boundary.
func (img *Image) DrawCircle(cx, cy, r int, c Color, filled bool) {
	if r < 0 {
		return
	}
	if r == 0 {
		img.Set(cx, cy, c)
		return
	}
	// No canvas pixel is farther than reach from the centre, so a larger
	// radius changes nothing and must not be squared.
	reach := core.Max(core.Abs(cx), core.Abs(cx-img.width+1)) +
		core.Max(core.Abs(cy), core.Abs(cy-img.height+1))
	if r > reach {
		if !filled && r-1 >= reach {
			return
		}
		if filled {
			r = reach
		}
	}
	x0, y0, x1, y1, ok := img.clipBox(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	outer := int64(r) * int64(r)
	inner := int64(r-1) * int64(r-1)
	for y := y0; y < y1; y++ {
		dy := int64(y - cy)
		for x := x0; x < x1; x++ {
			dx := int64(x - cx)
			d := dx*dx + dy*dy
			if d > outer {
				continue
			}
			if !filled && d <= inner {
				continue
			}
			img.Set(x, y, c)
		}
	}
}

// edge is the signed doubled area of (a, b, p); its sign tells which side of
// ab the point p lies on.
func edge(a, b, p Point) int64 {
	return int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
}

// DrawTriangle paints the triangle p1 p2 p3 in either winding order.
// Outlines and zero-area triangles are drawn as one pixel wide edges.
func (img *Image) DrawTriangle(p1, p2, p3 Point, c Color, filled bool) {
	area := edge(p1, p2, p3)
	if !filled || area == 0 {
		img.DrawLine(p1, p2, 1, c)
		img.DrawLine(p2, p3, 1, c)
		img.DrawLine(p3, p1, 1, c)
		return
	}

	minX := core.Min(p1.X, core.Min(p2.X, p3.X))
	maxX := core.Max(p1.X, core.Max(p2.X, p3.X))
	minY := core.Min(p1.Y, core.Min(p2.Y, p3.Y))
	maxY := core.Max(p1.Y, core.Max(p2.Y, p3.Y))
	x0, y0, x1, y1, ok := img.clipBox(minX, minY, maxX, maxY)
	if !ok {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := Pt(x, y)
			w0 := edge(p2, p3, p)
			w1 := edge(p3, p1, p)
			w2 := edge(p1, p2, p)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			img.Set(x, y, c)
		}
	}
}

// DrawLine paints the segment p1-p2. Thickness 1 (or less) uses Bresenham
// stepping; thicker lines paint every pixel within thickness/2 of the segment.
func (img *Image) DrawLine(p1, p2 Point, thickness int, c Color) {
	if thickness <= 1 {
		img.bresenham(p1, p2, c)
		return
	}

	half := float64(thickness) / 2
	pad := (thickness + 1) / 2
	minX := core.Min(p1.X, p2.X) - pad
	maxX := core.Max(p1.X, p2.X) + pad
	minY := core.Min(p1.Y, p2.Y) - pad
	maxY := core.Max(p1.Y, p2.Y) + pad
	x0, y0, x1, y1, ok := img.clipBox(minX, minY, maxX, maxY)
	if !ok {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if segmentDistance(float64(x), float64(y), p1, p2) <= half {
				img.Set(x, y, c)
			}
		}
	}
}

func (img *Image) bresenham(p1, p2 Point, c Color) {
	if !img.InBounds(p1.X, p1.Y) || !img.InBounds(p2.X, p2.Y) {
		var ok bool
		if p1, p2, ok = img.clipSegment(p1, p2); !ok {
			return
		}
	}

	x, y := p1.X, p1.Y
	dx := core.Abs(p2.X - p1.X)
	dy := -core.Abs(p2.Y - p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x, y, c)
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// clipSegment cuts p1-p2 down to the part inside the canvas (Liang-Barsky).
// Endpoints already inside are returned unchanged. ok is false when the
// segment misses the canvas.
func (img *Image) clipSegment(p1, p2 Point) (a, b Point, ok bool) {
	if img.width <= 0 || img.height <= 0 {
		return p1, p2, false
	}
	x0, y0 := float64(p1.X), float64(p1.Y)
	dx, dy := float64(p2.X)-x0, float64(p2.Y)-y0
	maxX, maxY := float64(img.width-1), float64(img.height-1)

	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{{-dx, x0}, {dx, maxX - x0}, {-dy, y0}, {dy, maxY - y0}} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return p1, p2, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return p1, p2, false
			}
			t1 = min(t1, t)
		}
	}

	at := func(t float64) Point {
		return Point{
			X: core.Clamp(core.Round(x0+t*dx), 0, img.width-1),
			Y: core.Clamp(core.Round(y0+t*dy), 0, img.height-1),
		}
	}
	a, b = p1, p2
	if t0 > 0 {
		a = at(t0)
	}
	if t1 < 1 {
		b = at(t1)
	}
	return a, b, true
}

// segmentDistance returns the distance from (px, py) to the segment a-b.
func segmentDistance(px, py float64, a, b Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	vx, vy := bx-ax, by-ay
	lenSq := vx*vx + vy*vy
	t := 0.0
	if lenSq > 0 {
		t = core.ClampF(((px-ax)*vx+(py-ay)*vy)/lenSq, 0, 1)
	}
	return math.Hypot(px-(ax+t*vx), py-(ay+t*vy))
}
