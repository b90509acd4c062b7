package ascii

import (
	"iter"

	"github.com/vovakirdan/asciiflap/internal/raster"
)

// Luma weights (ITU-R BT.601), scaled by 1000 so luma stays integral.
const (
	lumaR     = 299
	lumaG     = 587
	lumaB     = 114
	lumaScale = 1000
)

// Luma returns the perceptual brightness of c in [0, 255], truncated.
func Luma(c raster.Color) int {
	return luma(c.R, c.G, c.B)
}

func luma(r, g, b uint8) int {
	return (lumaR*int(r) + lumaG*int(g) + lumaB*int(b)) / lumaScale
}

// Aggregate accumulates one tile. X, Y, W and H are the tile's clipped pixel
// bounds; Col and Row its position in the block grid.
type Aggregate struct {
	Col, Row   int
	X, Y, W, H int
	SumLuma    int
	SumR       int
	SumG       int
	SumB       int
	Count      int
}

// OutputSize returns the block-quantized region of a width x height image.
// Each axis is rounded down to a multiple of block; an axis shorter than one
// block keeps its full length so every non-empty image yields a cell.
func OutputSize(width, height, block int) (outW, outH int) {
	outW = width / block * block
	outH = height / block * block
	if outW == 0 {
		outW = width
	}
	if outH == 0 {
		outH = height
	}
	return outW, outH
}

// GridSize returns the number of block columns and rows for an image.
func GridSize(width, height, block int) (cols, rows int) {
	outW, outH := OutputSize(width, height, block)
	return (outW + block - 1) / block, (outH + block - 1) / block
}

// Blocks yields one Aggregate per tile in row-major order. Each call starts
// a fresh scan; tiles with no in-bounds pixels are skipped.
func Blocks(img *raster.Image, cfg Config) iter.Seq[Aggregate] {
	return func(yield func(Aggregate) bool) {
		b := cfg.blockSize
		outW, outH := OutputSize(img.Width(), img.Height(), b)
		for y, row := 0, 0; y < outH; y, row = y+b, row+1 {
			for x, col := 0, 0; x < outW; x, col = x+b, col+1 {
				agg := aggregate(img, x, y, b, cfg.colorEnabled)
				if agg.Count == 0 {
					continue
				}
				agg.Col, agg.Row = col, row
				if !yield(agg) {
					return
				}
			}
		}
	}
}

// aggregate sums the tile at (x, y) intersected with the image bounds.
func aggregate(img *raster.Image, x, y, b int, withColor bool) Aggregate {
	x1 := min(x+b, img.Width())
	y1 := min(y+b, img.Height())
	agg := Aggregate{X: x, Y: y, W: max(x1-x, 0), H: max(y1-y, 0)}
	if agg.W == 0 || agg.H == 0 {
		return agg
	}

	pix := img.Pix()
	ch := img.Channels()
	stride := img.Width() * ch
	for py := y; py < y1; py++ {
		i := py*stride + x*ch
		for px := x; px < x1; px++ {
			r, g, bl := pix[i], pix[i+1], pix[i+2]
			agg.SumLuma += luma(r, g, bl)
			if withColor {
				agg.SumR += int(r)
				agg.SumG += int(g)
				agg.SumB += int(bl)
			}
			i += ch
		}
	}
	agg.Count = agg.W * agg.H
	return agg
}
